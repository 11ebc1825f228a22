package review

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Site template file names.
const (
	TemplateCSVFileName  = "DNV_Site_Template.csv"
	TemplateXLSXFileName = "DNV_Site_Template.xlsx"
	templateSheet        = "Sites"
)

// SiteTemplateHeader and SiteTemplateExample make up the multi-site upload
// template.
var (
	SiteTemplateHeader  = []string{"Site Name", "Street Address", "City", "State", "ZIP Code", "Services Offered"}
	SiteTemplateExample = []string{"Main Campus", "123 Main St", "Austin", "TX", "73301", "Emergency Department; Lithotripsy"}
)

// WriteSiteTemplateCSV writes the header and the example row.
func WriteSiteTemplateCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll([][]string{SiteTemplateHeader, SiteTemplateExample}); err != nil {
		return fmt.Errorf("writing site template: %w", err)
	}
	return nil
}

// WriteSiteTemplateXLSX writes the same template as a workbook with a bold
// header row.
func WriteSiteTemplateXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), templateSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	for i, row := range [][]string{SiteTemplateHeader, SiteTemplateExample} {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(templateSheet, fmt.Sprintf("A%d", i+1), &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(templateSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(SiteTemplateHeader))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(templateSheet, "A", lastCol, 22); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteTemplateFile writes the site template in format into dir.
func WriteTemplateFile(dir string, format Format) (string, error) {
	switch format {
	case FormatCSV:
		return writeFile(filepath.Join(dir, TemplateCSVFileName), WriteSiteTemplateCSV)
	case FormatXLSX:
		return writeFile(filepath.Join(dir, TemplateXLSXFileName), WriteSiteTemplateXLSX)
	}
	return "", fmt.Errorf("cannot write site template as %q", format)
}
