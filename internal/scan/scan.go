// Package scan 实现 GitHub 引用的词法识别与分发
//
// 引用文法全部锚定在剩余文本的开头，不向前搜索。Go 的 regexp
// 不支持前瞻，文法里的边界规则（结尾 .git、词边界、提及后的
// 连字符排除）全部用手写字节扫描表达。
package scan

import "strings"

const (
	// maxNameLen 用户名/组织名的最大长度
	maxNameLen = 39
	// minSHALen / maxSHALen 可识别的提交 hash 长度范围
	minSHALen = 7
	maxSHALen = 40
)

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// isProjectChar 项目名中允许的文件名字符，点号单独处理
func isProjectChar(c byte) bool {
	return isAlnum(c) || c == '-' || c == '_'
}

// isWordChar 标识符字符，用于词边界判断
func isWordChar(c byte) bool {
	return isAlnum(c) || c == '_'
}

// MatchName 匹配一个用户名/组织名前缀，返回其字节长度，0 表示不匹配
//
// 规则：字母数字开头，内部允许单个连字符（不能连续、不能结尾），
// 总长不超过 39，大小写不敏感。连字符只有在后面紧跟字母数字且
// 整体仍在长度上限内时才被吸收，结构上排除了非法形态。
func MatchName(s string) int {
	n := 0
	for n < len(s) && n < maxNameLen {
		c := s[n]
		if isAlnum(c) {
			n++
			continue
		}
		if c == '-' && n > 0 && n+1 < len(s) && isAlnum(s[n+1]) && n+1 < maxNameLen {
			n++
			continue
		}
		break
	}
	return n
}

// MatchPerson 匹配提及对象：一个用户名，可选跟 /团队名
func MatchPerson(s string) int {
	n := MatchName(s)
	if n == 0 {
		return 0
	}
	if n < len(s) && s[n] == '/' {
		if m := MatchName(s[n+1:]); m > 0 {
			return n + 1 + m
		}
	}
	return n
}

// MatchProject 匹配一个项目名前缀，返回其字节长度，0 表示不匹配
//
// 每一步吸收：一个允许的文件名字符；或 ".git" 且其后还有允许
// 字符；或一个后面不是 "git" 的点号。结尾的 ".git" 属于边界，
// 永远不计入项目名。
func MatchProject(s string) int {
	n := 0
	for n < len(s) {
		c := s[n]
		if isProjectChar(c) {
			n++
			continue
		}
		if c != '.' {
			break
		}
		if strings.HasPrefix(s[n:], ".git") {
			if n+4 < len(s) && isProjectChar(s[n+4]) {
				n += 4
				continue
			}
			break
		}
		n++
	}
	return n
}

// MatchHex 匹配十六进制串前缀
func MatchHex(s string) int {
	n := 0
	for n < len(s) && isHex(s[n]) {
		n++
	}
	return n
}

// MatchDigits 匹配十进制数字前缀
func MatchDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

// HasBoundary 判断位置 i 是否为词边界：到达串尾，或下一字节不是
// 标识符字符。防止在更长的标识符内部截出引用。
func HasBoundary(s string, i int) bool {
	return i >= len(s) || !isWordChar(s[i])
}
