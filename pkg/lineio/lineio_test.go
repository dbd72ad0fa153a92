package lineio

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func readAllLines(t *testing.T, path string) []string {
	t.Helper()
	reader, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s) error = %v", path, err)
	}
	defer reader.Close()

	var lines []string
	for reader.Scan() {
		lines = append(lines, reader.Text())
	}
	return lines
}

func TestOpenPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got := readAllLines(t, path)
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %v, want %v", got, want)
	}
}

func TestOpenGzipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.txt.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("one\ntwo\n")); err != nil {
		t.Fatalf("failed to compress fixture: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got := readAllLines(t, path)
	want := []string{"one", "two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %v, want %v", got, want)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Open() on a missing file returned nil error")
	}
}

func TestOpenCorruptGzipHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	if err := os.WriteFile(path, []byte("not gzip at all"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("Open() on a corrupt gzip file returned nil error")
	}
}

func TestTruncatedGzipEndsStreamSilently(t *testing.T) {
	// A decode error mid-stream ends the stream; lines already delivered
	// stay counted and no error surfaces.
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(gz, "article number %d with some padding text\n", i)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}

	path := filepath.Join(t.TempDir(), "truncated.gz")
	if err := os.WriteFile(path, buf.Bytes()[:buf.Len()/2], 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	lines := readAllLines(t, path)
	if len(lines) == 0 {
		t.Error("no lines delivered before the truncation point")
	}
	if len(lines) >= 1000 {
		t.Errorf("delivered %d lines from a half-truncated stream", len(lines))
	}
}

func TestGzipWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt.gz")
	w, err := CreateGzip(path, "out.txt")
	if err != nil {
		t.Fatalf("CreateGzip() error = %v", err)
	}
	if err := w.WriteLine("hello"); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	if err := w.WriteLine("world"); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen output: %v", err)
	}
	defer file.Close()
	gz, err := gzip.NewReader(file)
	if err != nil {
		t.Fatalf("output is not valid gzip: %v", err)
	}
	if got, want := gz.Name, "out.txt"; got != want {
		t.Errorf("gzip embedded name = %q, want %q", got, want)
	}

	got := readAllLines(t, path)
	want := []string{"hello", "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %v, want %v", got, want)
	}
}
