package dictionary

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileFormat identifies how a word list is stored on disk
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word per line
	FormatGzip               // gzip-compressed FormatText
)

var gzipMagic = []byte{0x1f, 0x8b}

// FormatInfo contains metadata about a word list format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain text word list",
		Extensions:  []string{".txt", ".lst", ".dic", ""},
	},
	FormatGzip: {
		Format:      FormatGzip,
		Description: "Gzip compressed word list",
		Extensions:  []string{".gz"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// ValidateSource checks that path is a readable regular file with a supported extension
func ValidateSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if formatForExt(path) == FormatUnknown {
		return fmt.Errorf("%s has unsupported extension %q", path, filepath.Ext(path))
	}
	return nil
}

func formatForExt(path string) FileFormat {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range []FileFormat{FormatText, FormatGzip} {
		for _, e := range supportedFormats[format].Extensions {
			if ext == e {
				return format
			}
		}
	}
	return FormatUnknown
}

// DetectFormat sniffs the first bytes of path, falling back to the extension
func DetectFormat(path string) (FileFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	head := make([]byte, len(gzipMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return FormatUnknown, err
	}
	if n == len(gzipMagic) && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		return FormatGzip, nil
	}
	if format := formatForExt(path); format == FormatText {
		return FormatText, nil
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", path)
}

type gzipSource struct {
	*gzip.Reader
	file *os.File
}

func (g gzipSource) Close() error {
	return errors.Join(g.Reader.Close(), g.file.Close())
}

// openSource opens path for reading, decompressing gzip lists transparently
func openSource(path string) (io.ReadCloser, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if format != FormatGzip {
		return f, nil
	}
	zr, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening gzip word list %s: %w", path, err)
	}
	return gzipSource{Reader: zr, file: f}, nil
}
