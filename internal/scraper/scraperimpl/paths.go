package scraperimpl

import (
	"fmt"
	"path/filepath"

	"github.com/orgball2608/subscraper/internal/pathformat"
)

// buildPaths resolves the directory template, then the filename template with the directory bound.
func buildPaths(opts pathformat.Options, directoryFormat, filenameFormat string) (directory, filename string, err error) {
	directory, err = pathformat.Reformat(opts, directoryFormat)
	if err != nil {
		return "", "", fmt.Errorf("format directory: %w", err)
	}

	opts.Directory = directory
	full, err := pathformat.Reformat(opts, filenameFormat)
	if err != nil {
		return "", "", fmt.Errorf("format filename: %w", err)
	}
	return directory, filepath.Base(full), nil
}
