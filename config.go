package githubify

import (
	"github.com/riverfjs/githubify-go/internal/types"
)

// 导出类型别名
type Repository = types.Repository
type Span = types.Span
type LinkSpec = types.LinkSpec
type Kind = types.Kind

// 导出引用类别常量
const (
	KindRepoSHA   = types.KindRepoSHA
	KindUserSHA   = types.KindUserSHA
	KindSHA       = types.KindSHA
	KindRepoIssue = types.KindRepoIssue
	KindUserIssue = types.KindUserIssue
	KindIssue     = types.KindIssue
	KindMention   = types.KindMention
	KindText      = types.KindText
)
