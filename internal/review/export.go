package review

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/mark3labs/dnvquote/internal/form"
	"golang.org/x/text/encoding/charmap"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Review export file names and content types.
const (
	CSVFileName    = "DNV_Quote_Review.csv"
	CSVContentType = "text/csv;charset=utf-8;"
	PDFFileName    = "DNV_Quote_Review.pdf"
	PDFContentType = "application/pdf"
)

// ParseFormat accepts csv, pdf or xlsx.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// WriteCSV writes a Field,Value header and the six summary rows. Values are
// quoted when they contain commas, quotes or newlines.
func WriteCSV(w io.Writer, d form.Draft) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Field", "Value"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range Summary(d) {
		if err := cw.Write([]string{r.Label, r.Value}); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// PDF layout, in millimetres.
const (
	pdfLabelWidth = 60
	pdfLineHeight = 6
)

// pdfFontFamily names an embedded PDF font.
const pdfFontFamily = "body"

// ExportOptions tune review exports.
type ExportOptions struct {
	// PDFFont is a TrueType font embedded in PDF exports. Empty uses the
	// built-in Helvetica, which only covers Windows-1252.
	PDFFont string
}

// WritePDF renders the summary and every section as an A4 PDF document.
//
// With fontPath set, that TrueType font is embedded and any UTF-8 text is
// written as is. Otherwise the core Helvetica font is used and characters
// outside Windows-1252 are printed as "?".
func WritePDF(w io.Writer, d form.Draft, fontPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("DNV Quote Request Review", true)
	pdf.SetCreator("dnvquote", true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)

	family := "Helvetica"
	tr := cp1252(pdf.UnicodeTranslatorFromDescriptor(""))
	if fontPath != "" {
		family = pdfFontFamily
		for _, style := range []string{"", "B", "I", "BI"} {
			pdf.AddUTF8Font(family, style, fontPath)
		}
		if pdf.Err() {
			return fmt.Errorf("loading pdf font %s: %w", fontPath, pdf.Error())
		}
		tr = func(s string) string { return s }
	}
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	bodyWidth := pageWidth - left - right

	pdf.AddPage()
	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(bodyWidth, 10, tr("DNV Quote Request Review"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	heading := func(text string) {
		pdf.SetFont(family, "B", 12)
		pdf.SetFillColor(0, 75, 141)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(bodyWidth, 8, tr(text), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(1)
	}
	row := func(label, value string) {
		if value == "" {
			value = NotProvided
		}
		pdf.SetFont(family, "B", 10)
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, tr(label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont(family, "", 10)
		pdf.MultiCell(bodyWidth-pdfLabelWidth, pdfLineHeight, tr(value), "", "L", false)
	}

	heading("Summary")
	for _, r := range Summary(d) {
		row(r.Label, r.Value)
	}
	pdf.Ln(4)

	for _, s := range Sections(d) {
		heading(fmt.Sprintf("%d. %s", s.JumpStep, s.Title))
		for _, r := range s.Rows {
			row(r.Label, r.Value)
		}
		for _, c := range s.Cards {
			pdf.SetFont(family, "BI", 10)
			pdf.CellFormat(bodyWidth, pdfLineHeight, tr(c.Title), "", 1, "L", false, 0, "")
			for _, r := range c.Rows {
				row(r.Label, r.Value)
			}
		}
		for _, line := range s.Lines {
			pdf.SetFont(family, "", 10)
			pdf.MultiCell(bodyWidth, pdfLineHeight, tr("- "+line), "", "L", false)
		}
		for _, g := range s.Chips {
			value := NotProvided
			if len(g.Chips) > 0 {
				value = strings.Join(g.Chips, ", ")
			}
			row(g.Title, value)
		}
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

// cp1252 wraps a core-font translator so runes Windows-1252 cannot encode
// come out as "?" instead of being dropped.
func cp1252(tr func(string) string) func(string) string {
	return func(s string) string {
		return tr(strings.Map(func(r rune) rune {
			if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
				return '?'
			}
			return r
		}, s))
	}
}

// ExportFile writes the review export in format into dir and returns the
// written path.
func ExportFile(dir string, d form.Draft, format Format, opts ExportOptions) (string, error) {
	var name string
	var write func(io.Writer, form.Draft) error
	switch format {
	case FormatCSV:
		name, write = CSVFileName, WriteCSV
	case FormatPDF:
		name = PDFFileName
		write = func(w io.Writer, d form.Draft) error { return WritePDF(w, d, opts.PDFFont) }
	default:
		return "", fmt.Errorf("cannot export review as %q", format)
	}
	return writeFile(filepath.Join(dir, name), func(w io.Writer) error { return write(w, d) })
}

// writeFile creates path (and its directory) and fills it with write.
func writeFile(path string, write func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	if err := write(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filepath.Base(path), err)
	}
	return path, nil
}
