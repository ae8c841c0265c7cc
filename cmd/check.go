package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/structuraltools/goiscc/internal/compliance"
	"github.com/structuraltools/goiscc/internal/design"
	"github.com/structuraltools/goiscc/internal/diagram"
	"github.com/structuraltools/goiscc/internal/report"
)

var (
	checkFile    string
	checkJSON    bool
	checkDiagram bool
	checkPDFOut  string
	checkXLSXOut string
	checkProject string
	checkAuthor  string
)

var (
	passBadge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Render("PASS")
	failBadge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("FAIL")
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a compliance check on a design file",
	Long: `Check a member design against IS 456:2000.

The design file is JSON or YAML and carries member_type, dimensions,
materials, reinforcement and optionally loads, building_parameters
and wind_parameters. Missing loads are derived automatically per
IS 875.

Examples:
  # Check a beam design
  goiscc check --file beam.json

  # Machine-readable output
  goiscc check --file beam.json --json

  # Check and export the calculation report
  goiscc check --file slab.yaml --pdf report.pdf --xlsx checks.xlsx`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Design input file (json or yaml) [required]")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the raw result as JSON")
	checkCmd.Flags().BoolVar(&checkDiagram, "diagram", false, "Draw the member cross-section")
	checkCmd.Flags().StringVar(&checkPDFOut, "pdf", "", "Write a PDF report to this path")
	checkCmd.Flags().StringVar(&checkXLSXOut, "xlsx", "", "Write the check schedule to this path")
	checkCmd.Flags().StringVar(&checkProject, "project", "", "Project name for the report header")
	checkCmd.Flags().StringVar(&checkAuthor, "author", "", "Engineer name for the report header")

	checkCmd.MarkFlagRequired("file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	input, err := readDesign(checkFile)
	if err != nil {
		return err
	}

	result := compliance.Check(input)

	if checkJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printResult(result)
		if checkDiagram && result.Error == "" {
			if member, err := design.ParseMemberType(input.MemberType); err == nil {
				if sketch := diagram.Sketch(member, input); sketch != "" {
					fmt.Println("SECTION:")
					fmt.Println("───────────────────────────────────────────────────────────────")
					fmt.Print(sketch)
					fmt.Println()
				}
			}
		}
	}

	if checkPDFOut != "" {
		if err := writePDFFile(checkPDFOut, result); err != nil {
			return err
		}
		fmt.Printf("Report written to: %s\n", checkPDFOut)
	}
	if checkXLSXOut != "" {
		if err := writeXLSXFile(checkXLSXOut, result); err != nil {
			return err
		}
		fmt.Printf("Check schedule written to: %s\n", checkXLSXOut)
	}

	if result.Error == "" && !result.OverallCompliance {
		os.Exit(1)
	}
	return nil
}

func printResult(result *design.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     COMPLIANCE CHECK - %s - IS 456:2000\n", result.MemberType)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if result.Error != "" {
		fmt.Printf("  Error: %s\n", result.Error)
		if len(result.SupportedTypes) > 0 {
			fmt.Printf("  Supported member types: %v\n", result.SupportedTypes)
		}
		fmt.Println()
		return
	}

	if len(result.DesignSummary) > 0 {
		fmt.Println("DESIGN SUMMARY:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, key := range summaryOrder {
			if v, ok := result.DesignSummary[key]; ok {
				fmt.Fprintf(w, "  %s:\t%v\n", key, v)
			}
		}
		w.Flush()
		fmt.Println()
	}

	if l := result.CalculatedLoads; l != nil {
		fmt.Println("DERIVED LOADS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		printLoad(w, "Dead load", l.DeadLoad.Float())
		printLoad(w, "Live load", l.LiveLoad.Float())
		printLoad(w, "Wind load", l.WindLoad.Float())
		printLoad(w, "Factored load", l.FactoredLoad.Float())
		printLoad(w, "Axial load", l.AxialLoad.Float())
		printLoad(w, "Design moment", l.Moment.Float())
		w.Flush()
		fmt.Println()
	}

	fmt.Println("CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tRequired\tProvided\tResult\n")
	fmt.Fprintf(w, "  ─────\t────────\t────────\t──────\n")
	for _, c := range result.Checks {
		badge := passBadge
		if !c.Pass {
			badge = failBadge
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s\n", c.Name, c.Required, c.Provided, badge)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	badge := passBadge
	if !result.OverallCompliance {
		badge = failBadge
	}
	fmt.Printf("  Overall compliance: %s\n", badge)
	fmt.Println()

	if len(result.Recommendations) > 0 {
		fmt.Println("RECOMMENDATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, rec := range result.Recommendations {
			fmt.Printf("  • %s\n", rec)
		}
		fmt.Println()
	}
}

// summaryOrder fixes the print order of known summary keys across
// member types.
var summaryOrder = []string{
	"span", "length", "breadth", "width", "depth", "height", "thickness",
	"effective_depth", "gross_area", "footing_area", "slab_type", "aspect_ratio",
	"factored_load", "design_moment", "design_shear", "design_axial_load",
	"steel_percentage", "bearing_pressure", "critical_moment",
	"concrete_grade", "steel_grade",
}

func printLoad(w *tabwriter.Writer, label string, v float64) {
	if v == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\t%.2f\n", label, v)
}

func writePDFFile(path string, result *design.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	opts := report.Options{Project: checkProject, Author: checkAuthor}
	return report.WritePDF(f, result, opts)
}

func writeXLSXFile(path string, result *design.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteXLSX(f, result)
}
