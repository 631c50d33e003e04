package dictionary

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/lexserve/pkg/lexicon"
	"github.com/charmbracelet/log"
)

// ErrEmptyDataset is returned by Load when a dataset decodes to no records.
var ErrEmptyDataset = errors.New("dataset contains no words")

// Load reads, decompresses if needed, and decodes a dataset file.
func Load(path string) ([]lexicon.WordEntry, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := readDataset(path, format)
	if err != nil {
		return nil, err
	}

	entries, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("error reading %q: %w", path, ErrEmptyDataset)
	}

	log.Debugf("Loaded %d words from %s (%d bytes) in %v", len(entries), path, len(data), time.Since(start))
	return entries, nil
}

func readDataset(path string, format FileFormat) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if format == FormatMsgpackGzip {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return data, nil
}
