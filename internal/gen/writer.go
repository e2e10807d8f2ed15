package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files. An empty outputDir writes every file
// into its package directory; otherwise all files go to outputDir, which is
// created if missing.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, dirPerm); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	written := make([]string, 0, len(files))

	for _, file := range files {
		dir := outputDir
		if dir == "" {
			dir = file.Dir
		}

		if dir == "" {
			return written, fmt.Errorf("no directory known for %s", file.PkgPath)
		}

		outputPath := filepath.Join(dir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", outputPath, err)
		}

		written = append(written, outputPath)
	}

	return written, nil
}
