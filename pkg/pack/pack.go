// Package pack renders a prompt-ready artifact for a set of files and
// directories: a <file_map> tree section followed by a <file_contents>
// section, and places the combined text on the system clipboard.
package pack

import (
	"errors"
	"fmt"
	"os"

	"promptpack/pkg/clipboard"
	"promptpack/pkg/ignore"

	"go.uber.org/zap"
)

var (
	// ErrNoPaths means the command line carried no path arguments.
	ErrNoPaths = errors.New("no paths provided")
	// ErrNoValidPaths means none of the given paths exist.
	ErrNoValidPaths = errors.New("no valid paths provided")
)

// Run orchestrates one packing run: it validates the input paths, renders
// both sections, writes the optional output file, and hands the artifact to
// the clipboard collaborator. Per-file and per-directory failures degrade
// inside the renderer; only argument validation and the final writes fail
// the run.
func Run(args Arguments, clip clipboard.Writer, logger *zap.Logger) error {
	if len(args.Paths) == 0 {
		fmt.Println("Please provide at least one file or folder path")
		return ErrNoPaths
	}

	var validPaths []string
	for _, p := range args.Paths {
		if _, err := os.Stat(p); err != nil {
			logger.Warn("Path does not exist or cannot be accessed", zap.String("path", p), zap.Error(err))
			continue
		}
		validPaths = append(validPaths, p)
	}
	if len(validPaths) == 0 {
		fmt.Println("No valid paths provided")
		return ErrNoValidPaths
	}
	logger.Debug("Valid paths", zap.Strings("paths", validPaths))

	rulesFile := args.RulesFile
	if rulesFile == "" {
		rulesFile = ignore.RulesFileName
	}

	fileMap := BuildFileMap(validPaths, rulesFile, logger)
	fileContents := BuildFileContents(validPaths, rulesFile, logger)
	prompt := fileMap + "\n" + fileContents
	logger.Debug("Generated prompt", zap.Int("sizeBytes", len(prompt)))

	if args.Output != "" {
		if err := os.WriteFile(args.Output, []byte(prompt), 0644); err != nil {
			logger.Error("Failed to write output file", zap.String("file", args.Output), zap.Error(err))
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("Wrote artifact to file", zap.String("file", args.Output))
	}

	if !args.NoClipboard {
		if err := clip.Write(prompt); err != nil {
			logger.Error("Failed to write clipboard", zap.Error(err))
			return fmt.Errorf("failed to write clipboard: %w", err)
		}
		fmt.Println("Prompt copied to clipboard")
	}

	return nil
}
