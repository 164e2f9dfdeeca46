package repourl

import (
	"testing"

	goGit "github.com/go-git/go-git/v5"
	gitConfig "github.com/go-git/go-git/v5/config"

	"github.com/riverfjs/githubify-go/internal/types"
)

// TestParse_GitScheme 测试 git:// 形式，结尾 .git 不进项目名
func TestParse_GitScheme(t *testing.T) {
	repo, ok := Parse("git://github.com/foo/bar.git")
	if !ok {
		t.Fatal("Parse() = false, want true")
	}
	if repo != (types.Repository{User: "foo", Project: "bar"}) {
		t.Errorf("Parse() = %+v, want {foo bar}", repo)
	}
}

// TestParse_HTTPS 测试 https 形式
func TestParse_HTTPS(t *testing.T) {
	repo, ok := Parse("https://github.com/foo/bar")
	if !ok || repo != (types.Repository{User: "foo", Project: "bar"}) {
		t.Errorf("Parse() = %+v, %v, want {foo bar}, true", repo, ok)
	}
}

// TestParse_TrailingPath 测试项目名后还有路径段
func TestParse_TrailingPath(t *testing.T) {
	repo, ok := Parse("https://github.com/foo/bar/tree/main")
	if !ok || repo != (types.Repository{User: "foo", Project: "bar"}) {
		t.Errorf("Parse() = %+v, %v, want {foo bar}, true", repo, ok)
	}
}

// TestParse_ReposPrefix 测试 repos/ 前导路径段被跳过
func TestParse_ReposPrefix(t *testing.T) {
	repo, ok := Parse("https://api.github.com/repos/foo/bar")
	if !ok || repo != (types.Repository{User: "foo", Project: "bar"}) {
		t.Errorf("Parse() = %+v, %v, want {foo bar}, true", repo, ok)
	}
}

// TestParse_HashTerminator 测试 # 终结符
func TestParse_HashTerminator(t *testing.T) {
	repo, ok := Parse("https://github.com/foo/bar#readme")
	if !ok || repo != (types.Repository{User: "foo", Project: "bar"}) {
		t.Errorf("Parse() = %+v, %v, want {foo bar}, true", repo, ok)
	}
}

// TestParse_DottedProject 测试项目名内的点号保留
func TestParse_DottedProject(t *testing.T) {
	repo, ok := Parse("https://github.com/foo/bar.js.git")
	if !ok || repo != (types.Repository{User: "foo", Project: "bar.js"}) {
		t.Errorf("Parse() = %+v, %v, want {foo bar.js}, true", repo, ok)
	}
}

// TestParse_NoMatch 测试解析失败
func TestParse_NoMatch(t *testing.T) {
	for _, input := range []string{"", "no slashes here", "trailing/", "/leading"} {
		if _, ok := Parse(input); ok {
			t.Errorf("Parse(%q) = true, want false", input)
		}
	}
}

// TestFromGit_OriginRemote 测试从 origin 远端发现上下文（含 scp 形式）
func TestFromGit_OriginRemote(t *testing.T) {
	dir := t.TempDir()
	gitRepo, err := goGit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit() error: %v", err)
	}
	_, err = gitRepo.CreateRemote(&gitConfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:foo/bar.git"},
	})
	if err != nil {
		t.Fatalf("CreateRemote() error: %v", err)
	}

	repo, err := FromGit(dir)
	if err != nil {
		t.Fatalf("FromGit() error: %v", err)
	}
	if repo != (types.Repository{User: "foo", Project: "bar"}) {
		t.Errorf("FromGit() = %+v, want {foo bar}", repo)
	}
}

// TestFromGit_NotARepo 测试非 git 目录报错
func TestFromGit_NotARepo(t *testing.T) {
	if _, err := FromGit(t.TempDir()); err == nil {
		t.Error("FromGit(empty dir) = nil error, want error")
	}
}

// TestFromGit_NoOrigin 测试缺少 origin 远端报错
func TestFromGit_NoOrigin(t *testing.T) {
	dir := t.TempDir()
	if _, err := goGit.PlainInit(dir, false); err != nil {
		t.Fatalf("PlainInit() error: %v", err)
	}
	if _, err := FromGit(dir); err == nil {
		t.Error("FromGit(no origin) = nil error, want error")
	}
}
