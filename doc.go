// # md2html
//
// `md2html` converts a Markdown document to an HTML5 fragment. The heavy
// lifting is delegated to [goldmark]; this tool only decides what to read,
// which extensions to enable, and where to write. It is deliberately a
// one-shot filter: the whole input is read into memory, converted once, and
// written out.
//
// ## Usage
//
//	md2html [INPUT] [OUTPUT]
//
// `INPUT` is a path to a Markdown file, or `-` for standard input. When it is
// omitted the tool reads standard input. `OUTPUT` is a path to write the HTML
// to, or `-` for standard output. When it is omitted the output path is
// derived from the input path by replacing its final extension with `.html`
// (appending `.html` when the input has no extension); when input comes from
// stdin the HTML goes to stdout instead.
//
// Examples:
//
//   - Convert a file next to itself (writes `doc.html`):
//
//     md2html doc.md
//
//   - Convert to an explicit destination:
//
//     md2html doc.md public/index.html
//
//   - Use as a pipeline filter:
//
//     cat doc.md | md2html - -
//
// ## Extensions
//
// The same fixed, ordered extension set is applied on every run so output is
// reproducible for a given input and goldmark version:
//
//   - pipe tables (GitHub style)
//   - smart typography (curly quotes, dashes, ellipses)
//   - attribute lists (`## Heading {#anchor}`)
//   - automatic heading anchors
//   - fenced code blocks (goldmark CommonMark core)
//
// The set is not user-configurable. Raw HTML in the source is passed through
// unchanged. Output is a bare fragment with no `<html>` or `<body>` wrapper.
//
// ## Supported Flags
//
//   - `-o FILE`: write HTML to `FILE`; equivalent to passing `OUTPUT`, and an
//     error if both are given.
//   - `--version`, `-v`: print the build version.
//
// ## Exit Status
//
// `0` on success. Any failure (missing input file, unreadable input,
// unwritable output, renderer fault) prints one human-readable line to
// standard error and exits `1`. Failures are never retried: every cause is
// deterministic given the same input and filesystem.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	md2html completion bash        # bash
//	md2html completion zsh         # zsh
//	md2html completion fish | source
//	md2html completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `md2html gen-docs ./docs/cli` writes a Markdown reference file per command,
// handy for publishing CLI docs alongside the rest of a project.
//
// [goldmark]: https://github.com/yuin/goldmark
package main
