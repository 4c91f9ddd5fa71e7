package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// These global variables are injected at build time to provide the
// version command
var (
	Version = "v0.0.0"
	Commit  = "commit"
	Date    = "today"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version of the binary you're running",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n", Version, Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "Built on %s\n", Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
