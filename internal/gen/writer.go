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

// WriteFiles writes every generated file into its package directory, or into
// outputDir when it is set.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		dir := file.Dir
		if outputDir != "" {
			dir = outputDir
		}

		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		outputPath := filepath.Join(dir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}
	}

	return nil
}
