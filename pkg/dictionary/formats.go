package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the dataset file formats Load understands
type FileFormat int

const (
	FormatUnknown    FileFormat = iota
	FormatMsgpack               // Plain MessagePack dataset
	FormatMsgpackGzip           // Gzip compressed MessagePack dataset
)

// FormatInfo contains metadata about a dataset file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "MessagePack Verb Dataset",
		Extensions:  []string{".mpk", ".msgpack"},
		MinSize:     7, // fixmap header + "words" key + array header
	},
	FormatMsgpackGzip: {
		Format:      FormatMsgpackGzip,
		Description: "Gzip MessagePack Verb Dataset",
		Extensions:  []string{".mpk.gz", ".msgpack.gz"},
		MinSize:     20, // gzip header and trailer
	},
}

// extOf returns the dataset extension of filename, keeping a trailing
// ".gz" together with the one before it.
func extOf(filename string) string {
	base := strings.ToLower(filepath.Base(filename))
	ext := filepath.Ext(base)
	if ext == ".gz" {
		inner := filepath.Ext(strings.TrimSuffix(base, ext))
		return inner + ext
	}
	return ext
}

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := extOf(filename)
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			log.Debugf("Dataset %s validated as %s", filename, formatInfo.Description)
			return nil
		}
	}
	return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
		filename, ext, formatInfo.Description, formatInfo.Extensions)
}

// DetectFileFormat attempts to detect the format of a file
func DetectFileFormat(filename string) (FileFormat, error) {
	for _, format := range []FileFormat{FormatMsgpackGzip, FormatMsgpack} {
		if err := ValidateFileFormat(filename, format); err == nil {
			return format, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
