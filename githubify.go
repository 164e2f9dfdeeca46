// Package githubify 在 Markdown 里识别 GitHub 速记引用并替换为链接
//
// 这个包识别纯文本中的 GitHub 专用速记（提交 SHA、issue/PR 编号、
// @提及，以及它们的仓库/用户限定形式），把每个识别出的引用替换成
// 指向对应 GitHub 资源的超链接。它以 goldmark 扩展的形式挂进
// Markdown 管道：只处理管道交来的纯文本段，不自己解析 Markdown。
//
// 核心功能：
//   - 七种引用文法 + 普通文本回退，严格从左到右按优先级分发
//   - SHA 黑名单过滤与 7 位缩写显示
//   - 仓库上下文解析：显式指定、仓库 URL、或本地 git 检出的 origin
//   - 保留提及名转向（@mention/@mentions → blog/821）
//
// 主要 API：
//   - New(): 构建 goldmark 扩展，上下文解析失败时拒绝安装
//   - Match(): 直接调用核心分发器，不经过 goldmark
//   - Githubify(): 一步把 Markdown 渲染成带引用链接的 HTML
//
// 示例：
//
//	ext, err := githubify.New(githubify.WithRepository("foo", "bar"))
//	if err != nil {
//	    // 无法解析仓库上下文，扩展拒绝安装
//	}
//	md := goldmark.New(goldmark.WithExtensions(extension.GFM, ext))
package githubify

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/riverfjs/githubify-go/internal/scan"
)

// Match 对一段纯文本运行核心分发器，返回覆盖全文的区间序列
//
// 不依赖 goldmark，宿主集成层之外也可以直接使用。repo 为环境
// 仓库上下文，裸引用和 user 限定引用相对它展开。
func Match(text string, repo Repository) []Span {
	return scan.New(repo).Scan(text)
}

// Githubify 把 Markdown 渲染为 HTML，GitHub 引用已替换为链接
//
// 这是主要的一步到位 API。解析选项并解析仓库上下文，失败时返回
// 错误（致命配置错误，不可按次恢复）。渲染用 goldmark + GFM，
// 与扩展逐段处理纯文本。
func Githubify(markdown string, opts ...Option) (string, error) {
	ext, err := New(opts...)
	if err != nil {
		return "", err
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, ext),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
