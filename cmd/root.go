package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structuraltools/goiscc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "goiscc",
	Short: "Building Code Compliance Checker",
	Long: `goiscc - Go IS Code Compliance Checker

A tool that verifies reinforced concrete member designs against the
numeric limit-state checks of IS 456:2000, deriving loads from
building parameters per IS 875 when explicit loads are absent.

Supported member types:
  - Beams    (flexure, shear, deflection, development length)
  - Columns  (slenderness, axial capacity, detailing)
  - Slabs    (one-way and two-way panels)
  - Footings (bearing, one-way and punching shear)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  goiscc v%s - Go IS Code Compliance Checker\n", version.Version)
		fmt.Println()
		fmt.Println("  Verifies beam, column, slab and footing designs against")
		fmt.Println("  IS 456:2000 with automatic IS 875 load derivation.")
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    check    Run a compliance check on a design file")
		fmt.Println("    loads    Derive member loads from building parameters")
		fmt.Println("    serve    Expose the checker as an HTTP API")
		fmt.Println("    version  Show version information")
		fmt.Println()
		fmt.Println("  Use 'goiscc --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
