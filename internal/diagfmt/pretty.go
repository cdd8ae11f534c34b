package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ember/internal/diag"
	"ember/internal/source"
)

// Pretty renders bag.Items() (call bag.Sort() first for stable output) as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//	  note: <secondary message>
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	underlineColor := color.New(color.FgRed, color.Bold)
	noteColor := color.New(color.FgCyan)

	prevNoColor := color.NoColor
	defer func() { color.NoColor = prevNoColor }()
	color.NoColor = !opts.Color

	sevColor := func(s diag.Severity) *color.Color {
		switch s {
		case diag.SevError:
			return errorColor
		case diag.SevWarning:
			return warningColor
		default:
			return infoColor
		}
	}

	formatPath := func(f *source.File) string {
		switch opts.PathMode {
		case PathModeAbsolute:
			return f.FormatPath("absolute", "")
		case PathModeRelative:
			return f.FormatPath("relative", fs.BaseDir())
		case PathModeBasename:
			return f.FormatPath("basename", "")
		default:
			return f.FormatPath("auto", "")
		}
	}

	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		pos, _ := fs.Resolve(d.Primary)

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pathColor.Sprint(formatPath(file)), pos.Line, pos.Col,
			sevColor(d.Severity).Sprint(d.Severity.String()),
			codeColor.Sprint(d.Code.String()),
			d.Message,
		)

		line := sourceLine(file, pos.Line)
		if line != "" {
			fmt.Fprintf(w, "    %s\n", strings.TrimRight(line, "\r"))
			col := visualWidthUpTo(line, pos.Col, 4)
			carets := int(d.Primary.Len())
			if carets < 1 {
				carets = 1
			}
			fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", col), underlineColor.Sprint(strings.Repeat("^", carets)))
		}

		if opts.ShowNotes {
			for _, n := range d.Notes {
				npos, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", noteColor.Sprint("note:"), formatPath(fs.Get(n.Span.File)), npos.Line, npos.Col, n.Msg)
			}
		}
	}
}
