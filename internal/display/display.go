package display

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/scaffold-next/scaffold-next/internal/branding"
	"github.com/scaffold-next/scaffold-next/internal/scaffold"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const separator = "================================"

type painter interface {
	Sprint(a ...any) string
}

var titleStyle = color.Style{color.FgBlue, color.OpBold}

// Printer writes user-facing output. Errors go to errOut, everything else to out.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	color  bool
	num    *message.Printer
}

// New returns a Printer. With useColor false the output is plain text.
func New(out, errOut io.Writer, useColor bool) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		color:  useColor,
		num:    message.NewPrinter(language.English),
	}
}

func (p *Printer) paint(c painter, s string) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

func (p *Printer) line(c painter, format string, args ...any) {
	fmt.Fprintln(p.out, p.paint(c, p.num.Sprintf(format, args...)))
}

// Welcome prints the banner shown before every run.
func (p *Printer) Welcome() {
	fmt.Fprintln(p.out)
	p.line(titleStyle, "🚀 %s", branding.DisplayName())
	p.line(color.Gray, "%s", branding.Description())
	p.line(color.Gray, "%s\n", separator)
}

// Plan prints the target directory and everything that will be created. For
// a preview it also prints the closing hint, since nothing else follows.
func (p *Printer) Plan(r *scaffold.Result) {
	if r.Preview {
		p.line(color.Yellow, "🔍 Preview mode - no changes will be made\n")
	}
	p.line(color.Cyan, "📁 Target directory: %s\n", r.Root)
	p.line(color.Green, "📋 Folder structure to be created:")
	for _, f := range r.Planned {
		p.line(color.Gray, "📁 %s/", f)
	}
	if r.Readme {
		p.line(color.Green, "📄 %s will be created", scaffold.ReadmeFile)
	}

	if r.Preview {
		p.line(color.Yellow, "\n✨ Preview complete! Run without --preview to create the structure.")
		return
	}
	p.line(color.Blue, "\n🚀 Creating folder structure...\n")
}

// Progress prints one line for an attempted folder or file.
func (p *Printer) Progress(o scaffold.Outcome) {
	icon := "📁"
	if o.Kind == scaffold.KindFile {
		icon = "📄"
	}
	if o.OK() {
		p.line(color.Green, "%s Created: %s", icon, o.Path)
		return
	}
	fmt.Fprintln(p.errOut, p.paint(color.Red, p.num.Sprintf("❌ Error creating %s: %v", o.Path, o.Err)))
}

// Summary prints the run statistics. Nothing is printed for a preview.
func (p *Printer) Summary(r *scaffold.Result) {
	if r.Preview {
		return
	}
	p.line(color.Blue, "\n✅ Scaffolding complete!\n")
	p.line(color.Cyan, "📊 Statistics:")
	p.line(color.Green, "   • Folders created: %d", r.Stats.FoldersCreated)
	p.line(color.Green, "   • Files created: %d", r.Stats.FilesCreated)
	if r.Stats.Errors > 0 {
		p.line(color.Red, "   • Errors: %d", r.Stats.Errors)
	}

	p.line(color.Yellow, "\n🎉 Your Next.js project structure is ready!")
	p.line(color.Gray, "Happy coding! 🚀")
}

// Error prints a fatal error.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.errOut, p.paint(color.Red, "❌ Error:"), err.Error())
}
