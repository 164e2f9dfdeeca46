package githubify

import (
	"errors"
	"fmt"

	"github.com/riverfjs/githubify-go/internal/repourl"
)

// ErrNoRepository is returned by New when no repository context can be
// resolved from the options. The extension refuses to install without one.
var ErrNoRepository = errors.New("githubify: no repository context")

// ConvertOptions holds options for reference linking.
type ConvertOptions struct {
	User          string
	Project       string
	RepositoryURL string
	GitDir        string
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithRepository sets an explicit {user, project} repository context.
func WithRepository(user, project string) Option {
	return func(opts *ConvertOptions) {
		opts.User = user
		opts.Project = project
	}
}

// WithRepositoryURL sets a repository URL string to parse the context from,
// e.g. "git://github.com/foo/bar.git" or "https://github.com/foo/bar".
func WithRepositoryURL(url string) Option {
	return func(opts *ConvertOptions) {
		opts.RepositoryURL = url
	}
}

// WithGitDir sets the directory whose git checkout supplies the context
// via the URL of its "origin" remote.
func WithGitDir(dir string) Option {
	return func(opts *ConvertOptions) {
		opts.GitDir = dir
	}
}

// defaultConvertOptions returns the default conversion options.
// Without any option the context is discovered from the checkout at ".".
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		GitDir: ".",
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// resolveRepository 按优先级解析仓库上下文：显式指定 > 仓库 URL >
// 本地 git 检出。只在安装扩展时执行一次，之后上下文只读共享。
func resolveRepository(opts *ConvertOptions) (Repository, error) {
	if opts.User != "" && opts.Project != "" {
		return Repository{User: opts.User, Project: opts.Project}, nil
	}
	if opts.RepositoryURL != "" {
		repo, ok := repourl.Parse(opts.RepositoryURL)
		if !ok {
			return Repository{}, fmt.Errorf("%w: unrecognized repository url %q", ErrNoRepository, opts.RepositoryURL)
		}
		return repo, nil
	}
	if opts.GitDir != "" {
		repo, err := repourl.FromGit(opts.GitDir)
		if err != nil {
			Logger.Debug().Err(err).Str("dir", opts.GitDir).Msg("git discovery failed")
			return Repository{}, fmt.Errorf("%w: %v", ErrNoRepository, err)
		}
		Logger.Debug().Str("user", repo.User).Str("project", repo.Project).Msg("resolved repository from git remote")
		return repo, nil
	}
	return Repository{}, ErrNoRepository
}
