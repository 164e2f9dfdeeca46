package scan

import (
	"github.com/riverfjs/githubify-go/internal/ghurl"
	"github.com/riverfjs/githubify-go/internal/types"
)

// Scanner 引用分发器
//
// 持有只读的环境仓库上下文，对每段纯文本从左到右扫描：每个位置
// 按固定优先级尝试各引用文法，第一个既匹配又通过校验的文法获胜；
// 全部落空时退到普通文本消耗规则。游标只前进，不回扫已提交文本。
type Scanner struct {
	repo     types.Repository
	grammars []grammar
}

// grammar 优先级表里的一项：引用类别和对应的匹配函数
type grammar struct {
	kind  types.Kind
	match func(string) (int, *types.LinkSpec, bool)
}

// New 创建绑定到给定仓库上下文的 Scanner
func New(repo types.Repository) *Scanner {
	s := &Scanner{repo: repo}
	s.grammars = []grammar{
		{types.KindRepoSHA, s.repoSHA},
		{types.KindUserSHA, s.userSHA},
		{types.KindSHA, s.sha},
		{types.KindRepoIssue, s.repoIssue},
		{types.KindUserIssue, s.userIssue},
		{types.KindIssue, s.issue},
		{types.KindMention, s.mention},
	}
	return s
}

// Repository 返回绑定的仓库上下文
func (s *Scanner) Repository() types.Repository {
	return s.repo
}

// Scan 扫描一段纯文本，返回覆盖全文、首尾相接的区间序列
//
// 链接区间和普通文本区间按原文顺序交错，相邻的普通文本区间已
// 合并。所有区间拼接起来严格等于输入。
func (s *Scanner) Scan(text string) []types.Span {
	var spans []types.Span
	p := 0
	for p < len(text) {
		if sp, ok := s.matchRef(text, p); ok {
			spans = append(spans, sp)
			p = sp.End
			continue
		}
		end := plainRunEnd(text, p)
		if r := rejectedSHARun(text[p:]); p+r > end {
			end = p + r
		}
		if n := len(spans); n > 0 && spans[n-1].Kind == types.KindText {
			spans[n-1].End = end
		} else {
			spans = append(spans, types.Span{Kind: types.KindText, Start: p, End: end})
		}
		p = end
	}
	return spans
}

// matchRef 在位置 p 按优先级依次尝试七个引用文法
//
// 被黑名单拒绝的 SHA 只算该文法落空，继续尝试更低优先级的文法。
// 优先级顺序保证 user/project@hash 不会被错误拆成从 project@hash
// 开始的 UserSHA 匹配。
func (s *Scanner) matchRef(text string, p int) (types.Span, bool) {
	rest := text[p:]
	for _, g := range s.grammars {
		if n, link, ok := g.match(rest); ok {
			return types.Span{Kind: g.kind, Start: p, End: p + n, Link: link}, true
		}
	}
	return types.Span{}, false
}

// repoSHA 文法：USER/PROJECT@HASH
func (s *Scanner) repoSHA(rest string) (int, *types.LinkSpec, bool) {
	u := MatchName(rest)
	if u == 0 || u >= len(rest) || rest[u] != '/' {
		return 0, nil, false
	}
	pr := MatchProject(rest[u+1:])
	if pr == 0 {
		return 0, nil, false
	}
	i := u + 1 + pr
	if i >= len(rest) || rest[i] != '@' {
		return 0, nil, false
	}
	h := MatchHex(rest[i+1:])
	if h < minSHALen || h > maxSHALen || !HasBoundary(rest, i+1+h) {
		return 0, nil, false
	}
	sha := rest[i+1 : i+1+h]
	if !ghurl.IsSHA(sha) {
		return 0, nil, false
	}
	user, project := rest[:u], rest[u+1:u+1+pr]
	repo := types.Repository{User: user, Project: project}
	return i + 1 + h, &types.LinkSpec{
		Href: ghurl.CommitURL(repo, sha),
		Text: user + "/" + project + "@" + ghurl.AbbrevSHA(sha),
	}, true
}

// userSHA 文法：USER@HASH，项目名取环境上下文
func (s *Scanner) userSHA(rest string) (int, *types.LinkSpec, bool) {
	u := MatchName(rest)
	if u == 0 || u >= len(rest) || rest[u] != '@' {
		return 0, nil, false
	}
	h := MatchHex(rest[u+1:])
	if h < minSHALen || h > maxSHALen || !HasBoundary(rest, u+1+h) {
		return 0, nil, false
	}
	sha := rest[u+1 : u+1+h]
	if !ghurl.IsSHA(sha) {
		return 0, nil, false
	}
	user := rest[:u]
	repo := types.Repository{User: user, Project: s.repo.Project}
	return u + 1 + h, &types.LinkSpec{
		Href: ghurl.CommitURL(repo, sha),
		Text: user + "@" + ghurl.AbbrevSHA(sha),
	}, true
}

// sha 文法：裸 HASH
//
// 裸形式下缩写的是整段匹配文本，而不只是捕获的 hash 组。
func (s *Scanner) sha(rest string) (int, *types.LinkSpec, bool) {
	h := MatchHex(rest)
	if h < minSHALen || h > maxSHALen || !HasBoundary(rest, h) {
		return 0, nil, false
	}
	token := rest[:h]
	if !ghurl.IsSHA(token) {
		return 0, nil, false
	}
	return h, &types.LinkSpec{
		Href: ghurl.CommitURL(s.repo, token),
		Text: ghurl.AbbrevSHA(token),
	}, true
}

// repoIssue 文法：USER/PROJECT#NUMBER，显示文本保留原样
func (s *Scanner) repoIssue(rest string) (int, *types.LinkSpec, bool) {
	u := MatchName(rest)
	if u == 0 || u >= len(rest) || rest[u] != '/' {
		return 0, nil, false
	}
	pr := MatchProject(rest[u+1:])
	if pr == 0 {
		return 0, nil, false
	}
	i := u + 1 + pr
	if i >= len(rest) || rest[i] != '#' {
		return 0, nil, false
	}
	d := MatchDigits(rest[i+1:])
	if d == 0 || !HasBoundary(rest, i+1+d) {
		return 0, nil, false
	}
	n := i + 1 + d
	repo := types.Repository{User: rest[:u], Project: rest[u+1 : u+1+pr]}
	return n, &types.LinkSpec{
		Href: ghurl.IssueURL(repo, rest[i+1:n]),
		Text: rest[:n],
	}, true
}

// userIssue 文法：USER#NUMBER，项目名取环境上下文
func (s *Scanner) userIssue(rest string) (int, *types.LinkSpec, bool) {
	u := MatchName(rest)
	if u == 0 || u >= len(rest) || rest[u] != '#' {
		return 0, nil, false
	}
	d := MatchDigits(rest[u+1:])
	if d == 0 || !HasBoundary(rest, u+1+d) {
		return 0, nil, false
	}
	n := u + 1 + d
	repo := types.Repository{User: rest[:u], Project: s.repo.Project}
	return n, &types.LinkSpec{
		Href: ghurl.IssueURL(repo, rest[u+1:n]),
		Text: rest[:n],
	}, true
}

// issue 文法：(GH-|#)NUMBER，前缀 GH- 不区分大小写
func (s *Scanner) issue(rest string) (int, *types.LinkSpec, bool) {
	prefix := 0
	switch {
	case rest[0] == '#':
		prefix = 1
	case len(rest) >= 3 && (rest[0] == 'G' || rest[0] == 'g') &&
		(rest[1] == 'H' || rest[1] == 'h') && rest[2] == '-':
		prefix = 3
	default:
		return 0, nil, false
	}
	d := MatchDigits(rest[prefix:])
	if d == 0 || !HasBoundary(rest, prefix+d) {
		return 0, nil, false
	}
	n := prefix + d
	return n, &types.LinkSpec{
		Href: ghurl.IssueURL(s.repo, rest[prefix:n]),
		Text: rest[:n],
	}, true
}

// mention 文法：@PERSON，后面不能紧跟连字符或标识符字符
func (s *Scanner) mention(rest string) (int, *types.LinkSpec, bool) {
	if rest[0] != '@' {
		return 0, nil, false
	}
	per := MatchPerson(rest[1:])
	if per == 0 {
		return 0, nil, false
	}
	n := 1 + per
	if n < len(rest) && (isWordChar(rest[n]) || rest[n] == '-') {
		return 0, nil, false
	}
	return n, &types.LinkSpec{
		Href: ghurl.MentionURL(rest[1:n]),
		Text: rest[:n],
	}, true
}

// rejectedSHARun 黑名单否决后的普通文本消耗下限
//
// 当前位置若恰好是一段语法合法、仅因黑名单被否决的裸 hash，返回
// 整段长度，让调用方把它一次性并入普通文本区间。否则逐字节退格
// 会重新进入这段 hex，其后缀可能凑成一个不在黑名单里的新 hash
// （如 fabaceae 的七字符后缀 abaceae），产出错误的提交链接。
// 从更靠后位置起始的 hash 被否决时不在此列，游标照常前进，保证
// user/project@hash 被否决后 @hash 仍可落到 mention 文法。
func rejectedSHARun(rest string) int {
	h := MatchHex(rest)
	if h < minSHALen || h > maxSHALen || !HasBoundary(rest, h) {
		return 0
	}
	if ghurl.IsSHA(rest[:h]) {
		return 0
	}
	return h
}

// plainRunEnd 普通文本消耗规则：至少前进一个字节，然后一直吃到下
// 一个可能作为引用起始的字节为止。起始字节都是 ASCII，UTF-8 的
// 续字节不会被误认，逐字节前进不会在多字节字符中间停下。
func plainRunEnd(text string, p int) int {
	i := p + 1
	for i < len(text) && !isRefStart(text[i]) {
		i++
	}
	return i
}

// isRefStart 判断字节是否可能作为七个引用文法之一的首字符
func isRefStart(c byte) bool {
	return isAlnum(c) || c == '#' || c == '@'
}
