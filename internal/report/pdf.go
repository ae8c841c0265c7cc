// Package report renders compliance results for engineers: a PDF
// calculation report and an XLSX check schedule.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/structuraltools/goiscc/internal/design"
)

// Options carries the report header fields.
type Options struct {
	Project string
	Author  string
	Title   string
}

// WritePDF renders a compliance report for one result.
func WritePDF(w io.Writer, result *design.Result, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Structural Compliance Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d - IS 456:2000 / IS 875 compliance check", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if opts.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", opts.Project))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Engineer: %s", opts.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if result.Error != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(180, 0, 0)
		pdf.MultiCell(0, 6, fmt.Sprintf("Check could not be completed: %s", result.Error), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		return pdf.Output(w)
	}

	// Verdict
	pdf.SetFont("Helvetica", "B", 13)
	if result.OverallCompliance {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(180, 0, 0)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Member: %s    Overall: %s", result.MemberType, result.Status))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)

	writeSummary(pdf, result)
	writeLoads(pdf, result)
	writeChecks(pdf, result)
	writeRecommendations(pdf, result)

	return pdf.Output(w)
}

func writeSummary(pdf *gofpdf.Fpdf, result *design.Result) {
	if len(result.DesignSummary) == 0 {
		return
	}
	sectionHeader(pdf, "Design Parameters")

	keys := make([]string, 0, len(result.DesignSummary))
	for k := range result.DesignSummary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pdf.SetFont("Helvetica", "", 10)
	for _, k := range keys {
		pdf.CellFormat(70, 6, k, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, formatValue(result.DesignSummary[k]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func writeLoads(pdf *gofpdf.Fpdf, result *design.Result) {
	if result.CalculatedLoads == nil && result.WindCalculations == nil {
		return
	}
	sectionHeader(pdf, "Derived Loads")
	pdf.SetFont("Helvetica", "", 10)

	if l := result.CalculatedLoads; l != nil {
		rows := []struct {
			label string
			value float64
		}{
			{"Dead load", l.DeadLoad.Float()},
			{"Live load", l.LiveLoad.Float()},
			{"Wind load", l.WindLoad.Float()},
			{"Factored load", l.FactoredLoad.Float()},
			{"Axial load", l.AxialLoad.Float()},
			{"Design moment", l.Moment.Float()},
		}
		for _, r := range rows {
			if r.value == 0 {
				continue
			}
			pdf.CellFormat(70, 6, r.label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, 6, fmt.Sprintf("%.2f", r.value), "1", 1, "R", false, 0, "")
		}
	}
	if wc := result.WindCalculations; wc != nil {
		pdf.CellFormat(70, 6, "Basic wind speed (m/s)", "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, fmt.Sprintf("%.0f (%s)", wc.BasicWindSpeed, wc.Zone), "1", 1, "R", false, 0, "")
		pdf.CellFormat(70, 6, "Design wind pressure (kN/m2)", "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, fmt.Sprintf("%.3f", wc.WindPressure), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func writeChecks(pdf *gofpdf.Fpdf, result *design.Result) {
	if len(result.Checks) == 0 {
		return
	}
	sectionHeader(pdf, "Compliance Checks")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 7, "Check", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Required", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Provided", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "Result", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 7, "Reference", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, c := range result.Checks {
		verdict := "PASS"
		if !c.Pass {
			verdict = "FAIL"
			pdf.SetTextColor(180, 0, 0)
		}
		pdf.CellFormat(50, 6, string(c.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", c.Required), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", c.Provided), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, verdict, "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, c.Description, "1", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(6)
}

func writeRecommendations(pdf *gofpdf.Fpdf, result *design.Result) {
	if len(result.Recommendations) == 0 {
		return
	}
	sectionHeader(pdf, "Recommendations")
	pdf.SetFont("Helvetica", "", 10)
	for _, rec := range result.Recommendations {
		pdf.MultiCell(0, 6, "- "+rec, "", "L", false)
	}
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	pdf.Ln(2)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
