package types

// Kind 标识一次匹配命中的引用类别
//
// 分发器按固定优先级依次尝试各类别，数值顺序即优先级顺序。
type Kind int

const (
	// KindRepoSHA user/project@hash 形式的提交引用
	KindRepoSHA Kind = iota
	// KindUserSHA user@hash 形式的提交引用
	KindUserSHA
	// KindSHA 裸 hash 提交引用
	KindSHA
	// KindRepoIssue user/project#123 形式的 issue 引用
	KindRepoIssue
	// KindUserIssue user#123 形式的 issue 引用
	KindUserIssue
	// KindIssue #123 或 GH-123 形式的 issue 引用
	KindIssue
	// KindMention @user 或 @org/team 形式的提及
	KindMention
	// KindText 非引用的普通文本段
	KindText
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindRepoSHA:
		return "repo-sha"
	case KindUserSHA:
		return "user-sha"
	case KindSHA:
		return "sha"
	case KindRepoIssue:
		return "repo-issue"
	case KindUserIssue:
		return "user-issue"
	case KindIssue:
		return "issue"
	case KindMention:
		return "mention"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Repository 环境仓库上下文 {user, project}
//
// 在安装扩展时解析一次，之后只读共享，裸引用和 user 限定引用
// 都相对它展开。
type Repository struct {
	User    string
	Project string
}

// IsZero reports whether the repository context is unset.
func (r Repository) IsZero() bool {
	return r.User == "" && r.Project == ""
}

// LinkSpec 一条已构建好的链接：目标 URL 和显示文本
type LinkSpec struct {
	Href string
	Text string
}

// Span 扫描结果中的一个区间，[Start, End) 为原文本中的字节范围
//
// Link 为 nil 时该区间是普通文本；否则是一条引用链接。
// 同一次扫描返回的区间首尾相接，拼起来恰好等于原文本。
type Span struct {
	Kind  Kind
	Start int
	End   int
	Link  *LinkSpec
}
