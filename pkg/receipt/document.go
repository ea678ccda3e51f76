package receipt

import (
	"strings"

	"github.com/nepdine/dinepos-api/pkg/printer"
)

// Line is one rendered row of a Document.
type Line struct {
	Text   string
	Center bool
	Bold   bool
	Double bool // double width+height (header emphasis)
	Rule   bool // horizontal rule spanning the page width
}

// Document is the rendered output of the layout engine. It carries the
// laid-out lines plus the height estimate computed before rendering.
type Document struct {
	width    int
	heightMM float64
	lines    []Line
}

// Lines returns the rendered rows in order.
func (d *Document) Lines() []Line {
	return d.lines
}

// HeightMM returns the estimated physical height of the document, so
// the paper can be trimmed to content length.
func (d *Document) HeightMM() float64 {
	return d.heightMM
}

// Text renders the document as plain monospaced text, one row per
// line. Centered rows are padded into the page width.
func (d *Document) Text() string {
	var b strings.Builder
	for _, ln := range d.lines {
		switch {
		case ln.Rule:
			b.WriteString(strings.Repeat("-", d.width))
		case ln.Center && len(ln.Text) < d.width:
			b.WriteString(strings.Repeat(" ", (d.width-len(ln.Text))/2))
			b.WriteString(ln.Text)
		default:
			b.WriteString(ln.Text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ESCPOS encodes the document as an ESC/POS byte stream ready to send
// to a thermal printer, ending with a feed and partial cut.
func (d *Document) ESCPOS() []byte {
	doc := printer.NewDocument(d.width)
	for _, ln := range d.lines {
		if ln.Rule {
			doc.SetAlign(printer.AlignLeft).Separator('-')
			continue
		}
		align := printer.AlignLeft
		if ln.Center {
			align = printer.AlignCenter
		}
		doc.SetAlign(align).SetBold(ln.Bold)
		if ln.Double {
			doc.SetFontSize(printer.FontDouble)
		}
		doc.Text(ln.Text)
		if ln.Double {
			doc.SetFontSize(printer.FontNormal)
		}
	}
	doc.SetAlign(printer.AlignLeft).
		SetBold(false).
		FeedLines(3).
		PartialCut()
	return doc.Bytes()
}

func (d *Document) add(ln Line) {
	d.lines = append(d.lines, ln)
}
