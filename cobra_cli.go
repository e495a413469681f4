package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

// Version is overridden at build time via -ldflags "-X main.Version=...".
var Version = "dev"

const rootLongDesc = `
md2html converts a Markdown document to an HTML5 fragment. It reads one input,
runs it through a fixed set of Markdown extensions (pipe tables, fenced code,
attribute lists, heading anchors, smart typography), and writes the result:

  • md2html doc.md              converts to doc.html next to the input
  • md2html doc.md out.html     converts to an explicit path
  • cat doc.md | md2html - -    reads stdin, writes HTML to stdout

"-" stands for the standard stream in either position. When OUTPUT is omitted
the input path's final extension is replaced with .html (appended when the
input has none); when both are omitted the tool is a stdin-to-stdout filter.
`

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	app := &cliApp{stdin: stdin, stdout: stdout, render: renderHTML}
	cmd := &cobra.Command{
		Use:           "md2html [INPUT] [OUTPUT]",
		Short:         "Convert a Markdown document to HTML",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.BoolP("version", "v", false, "show version information")
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write HTML to this path (same as the OUTPUT argument)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for md2html.

The output should be evaluated by your shell. For example:

  # bash
  md2html completion bash > /usr/local/etc/bash_completion.d/md2html

  # zsh
  md2html completion zsh > "${fpath[1]}/_md2html"

  # fish
  md2html completion fish | source

  # PowerShell
  md2html completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  md2html gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
