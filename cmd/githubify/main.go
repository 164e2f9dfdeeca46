package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	githubify "github.com/riverfjs/githubify-go"
)

var version = "0.1.0-dev"

type rootFlags struct {
	user       string
	project    string
	repository string
	gitDir     string
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "githubify:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "githubify [file]",
		Short: "Render Markdown to HTML with GitHub references linked",
		Long: `Githubify reads Markdown from a file or stdin and prints HTML in which
GitHub shorthand references (commit SHAs, #123 issue numbers, @mentions
and their user/repo qualified forms) have been replaced with links.

The repository context comes from --user/--project, from --repository,
or from the origin remote of the git checkout at --git-dir.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(flags, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.user, "user", "", "Repository owner for the ambient context")
	rootCmd.PersistentFlags().StringVar(&flags.project, "project", "", "Repository name for the ambient context")
	rootCmd.PersistentFlags().StringVar(&flags.repository, "repository", "", "Repository URL to parse the context from")
	rootCmd.PersistentFlags().StringVar(&flags.gitDir, "git-dir", ".", "Directory whose git origin remote supplies the context")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	refsCmd := &cobra.Command{
		Use:   "refs [file]",
		Short: "List the GitHub references found in the Markdown plain text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return runRefs(flags, args, asJSON)
		},
	}
	refsCmd.Flags().Bool("json", false, "Print machine-readable output")
	rootCmd.AddCommand(refsCmd)

	return rootCmd
}

func options(flags *rootFlags) []githubify.Option {
	if flags.verbose {
		githubify.SetLogger(githubify.Logger.Level(zerolog.DebugLevel))
	}
	var opts []githubify.Option
	if flags.user != "" || flags.project != "" {
		opts = append(opts, githubify.WithRepository(flags.user, flags.project))
	}
	if flags.repository != "" {
		opts = append(opts, githubify.WithRepositoryURL(flags.repository))
	}
	opts = append(opts, githubify.WithGitDir(flags.gitDir))
	return opts
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func runRender(flags *rootFlags, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	html, err := githubify.Githubify(input, options(flags)...)
	if err != nil {
		return err
	}
	fmt.Print(html)
	return nil
}

// refRecord refs 子命令的一条输出
type refRecord struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	URL  string `json:"url"`
}

func runRefs(flags *rootFlags, args []string, asJSON bool) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	ext, err := githubify.New(options(flags)...)
	if err != nil {
		return err
	}
	records := []refRecord{}
	for _, span := range ext.References(input) {
		records = append(records, refRecord{
			Kind: span.Kind.String(),
			Text: span.Link.Text,
			URL:  span.Link.Href,
		})
	}
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	for _, r := range records {
		fmt.Printf("%-12s %-32s %s\n", r.Kind, r.Text, r.URL)
	}
	return nil
}
