// ABOUTME: Version command
// ABOUTME: Prints product and version information

package cmd

import (
	"fmt"

	"github.com/BdN3504/teddy-sub000/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (%s)\n", version.Product, version.Version, version.Manufacturer)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
