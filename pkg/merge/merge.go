package merge

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Arguments holds the options for one merge run.
type Arguments struct {
	BaseDir string // Directory the tool runs from; scan root and output resolve against it
	All     bool   // Scan everything under BaseDir
	DirName string // Scan only this named subdirectory beneath BaseDir
	Output  string // Output filename, resolved relative to BaseDir (default document.txt)
}

// Run orchestrates a single merge: resolve the target, remove any stale
// output so it cannot be swept into its own scan, enumerate matching
// files, and write the merged document. The file list is computed before
// any writing happens. On success a one-line summary is printed to stdout;
// zero matches still produce an (empty) output file and a success result.
func Run(args Arguments, cfg Config, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting merge",
		zap.String("baseDir", args.BaseDir),
		zap.Bool("all", args.All),
		zap.String("dirName", args.DirName))

	target, err := Resolve(args.BaseDir, args.All, args.DirName, args.Output)
	if err != nil {
		logger.Error("Failed to resolve scan target", zap.Error(err))
		return err
	}

	// Remove a pre-existing output file before scanning. Best-effort: the
	// create during the write phase truncates anyway.
	if err := os.Remove(target.Output); err != nil && !os.IsNotExist(err) {
		logger.Debug("Could not remove pre-existing output file", zap.String("file", target.Output), zap.Error(err))
	}

	files, err := Enumerate(target.Root, cfg, logger)
	if err != nil {
		logger.Error("Failed to enumerate files", zap.Error(err))
		return fmt.Errorf("failed to enumerate files: %w", err)
	}

	if err := WriteDocument(target.Root, target.Output, files, logger); err != nil {
		logger.Error("Failed to write merged document", zap.String("file", target.Output), zap.Error(err))
		return fmt.Errorf("failed to write merged document: %w", err)
	}

	logger.Info("Merge completed",
		zap.Int("fileCount", len(files)),
		zap.String("outputFile", target.Output),
		zap.Duration("elapsed", time.Since(startTime)))
	fmt.Printf("%d files merged -> %s\n", len(files), target.Output)
	return nil
}
