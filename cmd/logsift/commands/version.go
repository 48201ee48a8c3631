package commands

import (
	"fmt"

	"github.com/logsift/logsift/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of logsift`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("logsift %s\n", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
