package lineio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"os"
)

// GzipWriter writes a gzip-compressed file at maximum compression with the
// uncompressed filename recorded in the gzip header.
type GzipWriter struct {
	file *os.File
	gz   *gzip.Writer
	buf  *bufio.Writer
}

// CreateGzip creates path for writing. embeddedName is stored in the gzip
// Name header so tools can recover the intended uncompressed filename.
func CreateGzip(path, embeddedName string) (*GzipWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create output file %s: %w", path, err)
	}

	gz, err := gzip.NewWriterLevel(file, gzip.BestCompression)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	gz.Name = embeddedName

	return &GzipWriter{
		file: file,
		gz:   gz,
		buf:  bufio.NewWriterSize(gz, 1024*1024),
	}, nil
}

// Write implements io.Writer.
func (w *GzipWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// WriteLine writes s followed by a newline.
func (w *GzipWriter) WriteLine(s string) error {
	if _, err := w.buf.WriteString(s); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// Close flushes all buffered data and closes the file. It must be called
// for the gzip stream to be terminated correctly.
func (w *GzipWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		_ = w.file.Close()
		return err
	}
	if err := w.gz.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
