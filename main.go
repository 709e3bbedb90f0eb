package main

import (
	"log"
	"os"
	"strings"

	"promptpack/cmd"
	"promptpack/pkg/logging"
	"promptpack/pkg/version"

	"golang.org/x/term"
)

func main() {
	logger, err := logging.New(false, "promptpack", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	execErr := cmd.Execute(logger)

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") { // Still check for other errors
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if execErr != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
