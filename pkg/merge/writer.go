package merge

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// WriteDocument writes the merged document to outputPath, one entry per
// file in the given order. Each entry is a `-- <relative-path>` header, a
// blank line, and the file's content with trailing whitespace trimmed;
// entries are separated by exactly one blank line, with none after the
// last. Per-file read failures are substituted inline so the run always
// produces a complete document. Line endings are newline-only regardless
// of platform.
func WriteDocument(root, outputPath string, files []string, logger *zap.Logger) error {
	logger.Debug("Writing merged document", zap.String("outputFile", outputPath), zap.Int("fileCount", len(files)))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for i, file := range files {
		relPath, err := filepath.Rel(root, file)
		if err != nil {
			logger.Warn("Unable to determine relative path, using absolute path",
				zap.String("filePath", file),
				zap.Error(err))
			relPath = file
		}
		relPath = filepath.ToSlash(relPath)

		if _, err := writer.WriteString("-- " + relPath + "\n\n"); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", relPath, err)
		}

		text := readFileText(file, logger)
		text = strings.TrimRightFunc(text, unicode.IsSpace)
		if _, err := writer.WriteString(text + "\n"); err != nil {
			return fmt.Errorf("failed to write content for %s: %w", relPath, err)
		}

		if i != len(files)-1 {
			if _, err := writer.WriteString("\n"); err != nil {
				return fmt.Errorf("failed to write entry separator: %w", err)
			}
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// readFileText reads a file's full content as UTF-8 text. Read failures
// are substituted with a diagnostic string rather than propagated, so a
// single unreadable file never aborts the run.
func readFileText(path string, logger *zap.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read file, substituting diagnostic",
			zap.String("filePath", path),
			zap.Error(err))
		return fmt.Sprintf("<<ERROR READING FILE: %v>>", err)
	}
	return decodeText(data)
}

// decodeText converts raw bytes to a string, replacing each byte that is
// not valid UTF-8 with U+FFFD instead of failing.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var sb strings.Builder
	sb.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(data[:size])
		}
		data = data[size:]
	}
	return sb.String()
}
