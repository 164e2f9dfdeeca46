package scan

import (
	"strings"
	"testing"
)

// TestMatchName_Simple 测试普通用户名
func TestMatchName_Simple(t *testing.T) {
	if got := MatchName("octocat rest"); got != len("octocat") {
		t.Errorf("MatchName(\"octocat rest\") = %d, want %d", got, len("octocat"))
	}
}

// TestMatchName_SingleChar 测试单字符用户名
func TestMatchName_SingleChar(t *testing.T) {
	if got := MatchName("a/b"); got != 1 {
		t.Errorf("MatchName(\"a/b\") = %d, want 1", got)
	}
}

// TestMatchName_InteriorHyphen 测试内部连字符
func TestMatchName_InteriorHyphen(t *testing.T) {
	if got := MatchName("foo-bar"); got != 7 {
		t.Errorf("MatchName(\"foo-bar\") = %d, want 7", got)
	}
}

// TestMatchName_TrailingHyphenExcluded 测试结尾连字符不计入
func TestMatchName_TrailingHyphenExcluded(t *testing.T) {
	if got := MatchName("foo-"); got != 3 {
		t.Errorf("MatchName(\"foo-\") = %d, want 3", got)
	}
}

// TestMatchName_ConsecutiveHyphens 测试连续连字符截断
func TestMatchName_ConsecutiveHyphens(t *testing.T) {
	if got := MatchName("a--b"); got != 1 {
		t.Errorf("MatchName(\"a--b\") = %d, want 1", got)
	}
}

// TestMatchName_LeadingHyphen 测试连字符开头不匹配
func TestMatchName_LeadingHyphen(t *testing.T) {
	if got := MatchName("-foo"); got != 0 {
		t.Errorf("MatchName(\"-foo\") = %d, want 0", got)
	}
}

// TestMatchName_LengthCap 测试长度上限 39
func TestMatchName_LengthCap(t *testing.T) {
	long := strings.Repeat("a", 50)
	if got := MatchName(long); got != 39 {
		t.Errorf("MatchName(50×'a') = %d, want 39", got)
	}
}

// TestMatchName_CaseInsensitive 测试大小写混合
func TestMatchName_CaseInsensitive(t *testing.T) {
	if got := MatchName("OctoCat7"); got != 8 {
		t.Errorf("MatchName(\"OctoCat7\") = %d, want 8", got)
	}
}

// TestMatchPerson_Team 测试 user/team 形式
func TestMatchPerson_Team(t *testing.T) {
	if got := MatchPerson("org/team rest"); got != len("org/team") {
		t.Errorf("MatchPerson(\"org/team rest\") = %d, want %d", got, len("org/team"))
	}
}

// TestMatchPerson_SlashWithoutTeam 测试斜杠后无团队名时只取用户名
func TestMatchPerson_SlashWithoutTeam(t *testing.T) {
	if got := MatchPerson("org/ rest"); got != 3 {
		t.Errorf("MatchPerson(\"org/ rest\") = %d, want 3", got)
	}
}

// TestMatchProject_Simple 测试普通项目名
func TestMatchProject_Simple(t *testing.T) {
	if got := MatchProject("bar baz"); got != 3 {
		t.Errorf("MatchProject(\"bar baz\") = %d, want 3", got)
	}
}

// TestMatchProject_TrailingGitExcluded 测试结尾 .git 不计入项目名
func TestMatchProject_TrailingGitExcluded(t *testing.T) {
	if got := MatchProject("bar.git"); got != 3 {
		t.Errorf("MatchProject(\"bar.git\") = %d, want 3", got)
	}
}

// TestMatchProject_GitFollowedByChar 测试 .git 后还有字符时整体吸收
func TestMatchProject_GitFollowedByChar(t *testing.T) {
	if got := MatchProject("bar.gitx"); got != 8 {
		t.Errorf("MatchProject(\"bar.gitx\") = %d, want 8", got)
	}
}

// TestMatchProject_DotNotGit 测试非 git 的点号
func TestMatchProject_DotNotGit(t *testing.T) {
	if got := MatchProject("b.a.r"); got != 5 {
		t.Errorf("MatchProject(\"b.a.r\") = %d, want 5", got)
	}
}

// TestMatchProject_DotGiAtEnd 测试结尾的 .gi 正常吸收
func TestMatchProject_DotGiAtEnd(t *testing.T) {
	if got := MatchProject("bar.gi"); got != 6 {
		t.Errorf("MatchProject(\"bar.gi\") = %d, want 6", got)
	}
}

// TestMatchProject_StopsAtSlash 测试斜杠截断
func TestMatchProject_StopsAtSlash(t *testing.T) {
	if got := MatchProject("bar/tree"); got != 3 {
		t.Errorf("MatchProject(\"bar/tree\") = %d, want 3", got)
	}
}

// TestMatchHex_Basic 测试十六进制串
func TestMatchHex_Basic(t *testing.T) {
	if got := MatchHex("deadBEEF99xyz"); got != 10 {
		t.Errorf("MatchHex(\"deadBEEF99xyz\") = %d, want 10", got)
	}
}

// TestMatchDigits_Basic 测试数字串
func TestMatchDigits_Basic(t *testing.T) {
	if got := MatchDigits("123abc"); got != 3 {
		t.Errorf("MatchDigits(\"123abc\") = %d, want 3", got)
	}
}

// TestHasBoundary_EndOfString 测试串尾是边界
func TestHasBoundary_EndOfString(t *testing.T) {
	if !HasBoundary("abc", 3) {
		t.Error("HasBoundary(\"abc\", 3) = false, want true")
	}
}

// TestHasBoundary_WordChar 测试标识符字符不是边界
func TestHasBoundary_WordChar(t *testing.T) {
	if HasBoundary("abcx", 3) {
		t.Error("HasBoundary(\"abcx\", 3) = true, want false")
	}
	if HasBoundary("abc_", 3) {
		t.Error("HasBoundary(\"abc_\", 3) = true, want false")
	}
}

// TestHasBoundary_Punctuation 测试标点是边界
func TestHasBoundary_Punctuation(t *testing.T) {
	if !HasBoundary("abc.", 3) {
		t.Error("HasBoundary(\"abc.\", 3) = false, want true")
	}
	if !HasBoundary("abc-", 3) {
		t.Error("HasBoundary(\"abc-\", 3) = false, want true")
	}
}
