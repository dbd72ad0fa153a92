// Package lineio reads and writes line-oriented corpus files, transparently
// handling gzip compression based on the .gz file extension.
package lineio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxLineBytes bounds a single article line. Encyclopedia articles are
// stored one per line and can be very long.
const maxLineBytes = 4 * 1024 * 1024

// LineReader produces a lazy, sequential stream of text lines from a file,
// decompressing when the extension indicates gzip. A read or decode error
// mid-stream ends the stream; lines already delivered stay valid. The
// returned line is only valid until the next call to Scan.
type LineReader struct {
	file *os.File
	gz   *gzip.Reader
	sc   *bufio.Scanner
}

// Open opens path for line reading. Failure to open the file, or a corrupt
// gzip header, is returned as an error; errors after this point silently
// end the stream instead.
func Open(path string) (*LineReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	r := &LineReader{file: file}
	var src io.Reader = file
	if filepath.Ext(path) == ".gz" {
		r.gz, err = gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to read gzip header of %s: %w", path, err)
		}
		src = r.gz
	}

	r.sc = bufio.NewScanner(src)
	r.sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return r, nil
}

// Scan advances to the next line. It returns false at end of input and on
// any read or decode error.
func (r *LineReader) Scan() bool {
	return r.sc.Scan()
}

// Text returns the current line without its trailing newline.
func (r *LineReader) Text() string {
	return r.sc.Text()
}

// Close releases the underlying file.
func (r *LineReader) Close() error {
	if r.gz != nil {
		_ = r.gz.Close()
	}
	return r.file.Close()
}
