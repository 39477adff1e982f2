package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"mergedoc/pkg/logging"
	"mergedoc/pkg/merge"
	"mergedoc/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	scanAll    bool
	scanDir    string
	outputName string
	verbose    bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "mergedoc",
	Short: "Mergedoc concatenates source trees into a single document",
	Long: `Mergedoc walks a directory tree and concatenates every text/source file
that passes its extension allowlist into one annotated document, suitable
for snapshot workflows like feeding a codebase to another tool as one file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			if err := logging.Setup(true, "mergedoc", version.Get().Version); err != nil {
				return fmt.Errorf("failed to initialize verbose logger: %w", err)
			}
			logger = logging.Logger
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir, err := toolDir()
		if err != nil {
			return err
		}
		return merge.Run(merge.Arguments{
			BaseDir: baseDir,
			All:     scanAll,
			DirName: scanDir,
			Output:  outputName,
		}, merge.Default(), logger)
	},
}

func init() {
	RootCmd.Flags().BoolVarP(&scanAll, "all", "a", false, "scan everything under the tool's own directory tree")
	RootCmd.Flags().StringVarP(&scanDir, "dir", "d", "", "scan only this named subdirectory beneath the tool's location")
	RootCmd.Flags().StringVarP(&outputName, "output", "o", merge.DefaultOutputName, "output filename, resolved relative to the tool's location")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")
	RootCmd.MarkFlagsMutuallyExclusive("all", "dir")
	RootCmd.MarkFlagsOneRequired("all", "dir")
}

// toolDir returns the directory containing the running executable, the
// anchor for both the scan root and the output path.
func toolDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Execute runs the root command with the given logger and returns any
// execution error after it has been reported on stderr.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}
