package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type options struct {
	outputPath string
}

// ioPlan is the resolved pair of input source and output destination.
// An empty inputPath means standard input; an empty outputPath means
// standard output.
type ioPlan struct {
	inputPath  string
	outputPath string
}

type cliApp struct {
	stdin  io.Reader
	stdout io.Writer
	opts   options
	render renderFunc
}

func run(argv []string, stdin io.Reader, stdout io.Writer) error {
	cmd := newRootCmd(stdin, stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(positionals []string) error {
	input := ""
	output := app.opts.outputPath
	if len(positionals) >= 1 {
		input = positionals[0]
	}
	if len(positionals) == 2 {
		if output != "" {
			return errors.New("-o cannot be combined with an OUTPUT argument")
		}
		output = positionals[1]
	}

	plan := resolvePlan(input, output)

	src, err := readInput(plan.inputPath, app.stdin)
	if err != nil {
		return err
	}
	html, err := app.render(src)
	if err != nil {
		return err
	}
	if err := writeOutput(plan.outputPath, app.stdout, html); err != nil {
		return err
	}
	if plan.outputPath != "" {
		fmt.Fprintf(app.stdout, "Converted to %s\n", plan.outputPath)
	}
	return nil
}

// resolvePlan maps the two positional arguments onto concrete input and
// output targets. "-" (or an omitted argument) selects the standard
// stream; an omitted output falls back to a path derived from the input
// file, or to stdout when input is stdin.
func resolvePlan(input, output string) ioPlan {
	plan := ioPlan{}
	if input != "" && input != "-" {
		plan.inputPath = input
	}
	switch {
	case output == "-":
		// stdout
	case output != "":
		plan.outputPath = output
	case plan.inputPath != "":
		plan.outputPath = defaultOutputPath(plan.inputPath)
	}
	return plan
}

// defaultOutputPath replaces the final extension of path with ".html",
// or appends ".html" when path has no extension. Only the last
// extension is touched, so "archive.tar.md" becomes "archive.tar.html".
// A dotfile's leading dot is part of the name, not an extension, so
// ".notes" becomes ".notes.html".
func defaultOutputPath(path string) string {
	ext := filepath.Ext(path)
	if len(ext) == len(filepath.Base(path)) {
		ext = ""
	}
	return path[:len(path)-len(ext)] + ".html"
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", errRead, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", errInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %q: %v", errRead, path, err)
	}
	return data, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %v", errWrite, err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %q: %v", errWrite, path, err)
	}
	return nil
}
