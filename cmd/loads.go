package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structuraltools/goiscc/internal/design"
	"github.com/structuraltools/goiscc/internal/loads"
)

var (
	loadsFile string
	loadsJSON bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Derive member loads from building parameters",
	Long: `Run only the automatic load calculation for a design file and
print the derived loads together with the full derivation audit.

Defaults apply for missing building and wind parameters: residential
use, 1 floor, 3 m floor height, 150 mm slab, 20 m² tributary area,
3 m tributary width, wind zone_2 on terrain category 2.

Examples:
  goiscc loads --file column.json
  goiscc loads --file beam.yaml --json`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().StringVarP(&loadsFile, "file", "f", "", "Design input file (json or yaml) [required]")
	loadsCmd.Flags().BoolVar(&loadsJSON, "json", false, "Print the updated design record as JSON")

	loadsCmd.MarkFlagRequired("file")
}

func runLoads(cmd *cobra.Command, args []string) error {
	input, err := readDesign(loadsFile)
	if err != nil {
		return err
	}

	member, err := design.ParseMemberType(input.MemberType)
	if err != nil {
		return err
	}
	if err := loads.Calculate(member, input); err != nil {
		return err
	}

	if loadsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(input)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     AUTOMATIC LOAD CALCULATION - %s - IS 875\n", member)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("RESOLVED LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printLoad(w, "Dead load", input.Loads.DeadLoad.Float())
	printLoad(w, "Live load", input.Loads.LiveLoad.Float())
	printLoad(w, "Wind load", input.Loads.WindLoad.Float())
	printLoad(w, "Factored load", input.Loads.FactoredLoad.Float())
	printLoad(w, "Total load", input.Loads.TotalLoad.Float())
	printLoad(w, "Axial load", input.Loads.AxialLoad.Float())
	printLoad(w, "Design moment", input.Loads.Moment.Float())
	w.Flush()
	fmt.Println()

	if wc := input.WindCalculations; wc != nil {
		fmt.Println("WIND DERIVATION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Basic wind speed (vb):\t%.0f m/s (%s)\n", wc.BasicWindSpeed, wc.Zone)
		fmt.Fprintf(w, "  Terrain/height factor (k2):\t%.3f\n", wc.TerrainHeightFactor)
		fmt.Fprintf(w, "  Topography factor (k3):\t%.1f\n", wc.TopographyFactor)
		fmt.Fprintf(w, "  Design wind speed (vz):\t%.2f m/s\n", wc.DesignWindSpeed)
		fmt.Fprintf(w, "  Design wind pressure (pz):\t%.3f kN/m²\n", wc.WindPressure)
		w.Flush()
		fmt.Println()
	}

	return nil
}
