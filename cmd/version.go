package cmd

import (
	"fmt"

	"mergedoc/pkg/version"

	"github.com/spf13/cobra"
)

// versionCmd reports the version of the mergedoc binary. The --short flag
// prints only the bare version number.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of mergedoc",
	Long:  `Display the current version information of the mergedoc CLI tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()
		if short {
			fmt.Println(v.Version)
		} else {
			fmt.Println(v.String())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	RootCmd.AddCommand(versionCmd)
}
