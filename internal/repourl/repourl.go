// Package repourl 从仓库 URL 或本地 git 检出解析环境仓库上下文
package repourl

import (
	"fmt"
	"strings"

	goGit "github.com/go-git/go-git/v5"

	"github.com/riverfjs/githubify-go/internal/scan"
	"github.com/riverfjs/githubify-go/internal/types"
)

// Parse 在 URL 字符串中提取 {user, project}
//
// 候选位置为串首和每个 '/' 之后，容忍 repos/ 这类前导路径段；
// 项目名之后必须是 .git、'/'、'#'、'@' 或串尾。第一个成功的候选
// 获胜。解析失败返回 false，由调用方决定是否致命。
func Parse(url string) (types.Repository, bool) {
	for i := 0; i < len(url); i++ {
		if i > 0 && url[i-1] != '/' {
			continue
		}
		rest := url[i:]
		rest = strings.TrimPrefix(rest, "repos/")
		if repo, ok := parseAt(rest); ok {
			return repo, true
		}
	}
	return types.Repository{}, false
}

// parseAt 在锚定位置套用 USER/PROJECT 文法并检查终结符
func parseAt(rest string) (types.Repository, bool) {
	u := scan.MatchName(rest)
	if u == 0 || u >= len(rest) || rest[u] != '/' {
		return types.Repository{}, false
	}
	p := scan.MatchProject(rest[u+1:])
	if p == 0 {
		return types.Repository{}, false
	}
	tail := rest[u+1+p:]
	// 项目名扫描只会停在 .git 边界或非项目字符处
	if tail != "" && tail[0] != '.' && tail[0] != '/' && tail[0] != '#' && tail[0] != '@' {
		return types.Repository{}, false
	}
	return types.Repository{
		User:    rest[:u],
		Project: rest[u+1 : u+1+p],
	}, true
}

// FromGit 打开 dir 所在的 git 检出，用 origin 远端的 URL 解析上下文
func FromGit(dir string) (types.Repository, error) {
	repo, err := goGit.PlainOpenWithOptions(dir, &goGit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return types.Repository{}, fmt.Errorf("open repository: %w", err)
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return types.Repository{}, fmt.Errorf("origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return types.Repository{}, fmt.Errorf("origin remote has no URL")
	}
	// scp 形式的 origin（git@github.com:foo/bar.git）没有斜杠锚点，
	// 把第一个冒号归一成路径分隔后再套文法
	url := strings.Replace(urls[0], ":", "/", 1)
	parsed, ok := Parse(url)
	if !ok {
		return types.Repository{}, fmt.Errorf("unrecognized repository url %q", urls[0])
	}
	return parsed, nil
}
