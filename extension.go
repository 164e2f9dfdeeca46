package githubify

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/githubify-go/internal/scan"
)

// Extension goldmark 扩展：把纯文本段里的 GitHub 引用改写成链接节点
type Extension struct {
	scanner *scan.Scanner
}

// New 构建扩展。仓库上下文在这里解析一次，解析不出来时返回错误，
// 扩展拒绝安装（致命配置错误，不是按次错误）。
func New(opts ...Option) (*Extension, error) {
	options := applyOptions(opts...)
	repo, err := resolveRepository(options)
	if err != nil {
		return nil, err
	}
	return &Extension{scanner: scan.New(repo)}, nil
}

// Repository 返回扩展解析出的仓库上下文
func (e *Extension) Repository() Repository {
	return e.scanner.Repository()
}

// Extend 把引用改写注册进 goldmark 的 AST 变换阶段
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&refTransformer{scanner: e.scanner}, 500),
	))
}

// References 解析 Markdown 并返回纯文本段里识别出的引用区间
//
// 只扫描改写阶段会处理的文本段：已有链接、自动链接、图片和行内
// 代码里的引用不计入。返回区间的 Start/End 是相对整段输入的字节
// 偏移，按原文顺序排列。
func (e *Extension) References(markdown string) []Span {
	source := []byte(markdown)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))
	var refs []Span
	for _, node := range collectTexts(doc) {
		seg := node.Segment
		for _, sp := range e.scanner.Scan(string(source[seg.Start:seg.Stop])) {
			if sp.Link == nil {
				continue
			}
			sp.Start += seg.Start
			sp.End += seg.Start
			refs = append(refs, sp)
		}
	}
	return refs
}

// refTransformer 遍历解析完的文档，对每个纯文本段运行核心分发器
type refTransformer struct {
	scanner *scan.Scanner
}

// Transform 收集可改写的文本节点再逐个替换
//
// 已有链接、自动链接、图片和行内代码里的文本不处理；改写只发生在
// 收集完成之后，遍历过程中不动树。
func (t *refTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	for _, node := range collectTexts(doc) {
		t.rewrite(node, source)
	}
}

// collectTexts 收集需要扫描的文本节点，跳过不可改写的子树
func collectTexts(doc ast.Node) []*ast.Text {
	var texts []*ast.Text
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link, *ast.AutoLink, *ast.Image, *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			texts = append(texts, node)
		}
		return ast.WalkContinue, nil
	})
	return texts
}

// rewrite 把一个文本节点拆成普通文本段与链接节点的交错序列
//
// 区间由分发器给出，整体覆盖原文本段。显示文本与原文一致时链接
// 子节点直接引用源文本区间，被缩写过的 SHA 形式则用字符串节点。
func (t *refTransformer) rewrite(node *ast.Text, source []byte) {
	seg := node.Segment
	run := string(source[seg.Start:seg.Stop])
	spans := t.scanner.Scan(run)
	if len(spans) == 0 {
		return
	}
	if len(spans) == 1 && spans[0].Link == nil {
		return
	}
	parent := node.Parent()
	if parent == nil {
		return
	}
	var last ast.Node
	for _, sp := range spans {
		var repl ast.Node
		if sp.Link == nil {
			repl = ast.NewTextSegment(text.NewSegment(seg.Start+sp.Start, seg.Start+sp.End))
		} else {
			link := ast.NewLink()
			link.Destination = []byte(sp.Link.Href)
			if sp.Link.Text == run[sp.Start:sp.End] {
				link.AppendChild(link, ast.NewTextSegment(text.NewSegment(seg.Start+sp.Start, seg.Start+sp.End)))
			} else {
				link.AppendChild(link, ast.NewString([]byte(sp.Link.Text)))
			}
			repl = link
		}
		parent.InsertBefore(parent, node, repl)
		last = repl
	}
	// 行尾换行标记落在被替换的节点上，要转移到新的末尾节点
	if node.SoftLineBreak() || node.HardLineBreak() {
		tail, ok := last.(*ast.Text)
		if !ok {
			tail = ast.NewTextSegment(text.NewSegment(seg.Stop, seg.Stop))
			parent.InsertBefore(parent, node, tail)
		}
		tail.SetSoftLineBreak(node.SoftLineBreak())
		tail.SetHardLineBreak(node.HardLineBreak())
	}
	parent.RemoveChild(parent, node)
}
