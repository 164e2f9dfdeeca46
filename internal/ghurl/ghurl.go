package ghurl

import (
	"strings"

	"github.com/riverfjs/githubify-go/internal/types"
)

// BaseURL GitHub 链接的统一前缀，所有生成的 href 都以它开头
const BaseURL = "https://github.com/"

// shaBlacklist 形似 SHA 但实为英文单词的十六进制串，不作为提交引用识别
var shaBlacklist = map[string]struct{}{
	"deedeed":  {},
	"fabaceae": {},
}

// mentionOverwrites 保留提及名的转向表
//
// 命中时链接路径不再指向个人主页，而是固定的公告地址。
// 查找按捕获原样区分大小写。
var mentionOverwrites = map[string]string{
	"mention":  "blog/821",
	"mentions": "blog/821",
}

// IsSHA 判断一段十六进制串是否可作为提交 hash
//
// 语法合法但命中黑名单的串返回 false，由调用方继续按普通文本处理。
// 黑名单比较不区分大小写。
func IsSHA(hex string) bool {
	_, blacklisted := shaBlacklist[strings.ToLower(hex)]
	return !blacklisted
}

// AbbrevSHA 返回 hash 的展示缩写：前 7 个字符
func AbbrevSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// Base returns the link prefix for the given repository context.
// A zero context yields the bare GitHub base URL.
func Base(repo types.Repository) string {
	if repo.IsZero() {
		return BaseURL
	}
	return BaseURL + repo.User + "/" + repo.Project + "/"
}

// CommitURL 生成提交链接，hash 保留完整长度
func CommitURL(repo types.Repository, sha string) string {
	return Base(repo) + "commit/" + sha
}

// IssueURL 生成 issue 链接
func IssueURL(repo types.Repository, number string) string {
	return Base(repo) + "issues/" + number
}

// MentionURL 生成提及链接
//
// 提及永远相对主机而非仓库：即使存在仓库上下文，个人主页也不是
// 仓库下的路径。保留名先经转向表替换。
func MentionURL(person string) string {
	if overwrite, ok := mentionOverwrites[person]; ok {
		return BaseURL + overwrite
	}
	return BaseURL + person
}
