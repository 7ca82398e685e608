// Package testutil holds fixture helpers shared by the package tests.
package testutil

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

// GzipBytes compresses data the way the game stores .sub files.
// t is the active test; data is the raw XML.
func GzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

// WriteSub writes a gzip-compressed .sub fixture and returns its path.
// t is the active test; dir is the output directory; name is the file name.
func WriteSub(t *testing.T, dir string, name string, xml string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, GzipBytes(t, []byte(xml)), 0o644); err != nil {
		t.Fatalf("write sub fixture: %v", err)
	}
	return path
}

// WriteSubPlain writes an uncompressed .sub fixture and returns its path.
func WriteSubPlain(t *testing.T, dir string, name string, xml string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(xml), 0o644); err != nil {
		t.Fatalf("write sub fixture: %v", err)
	}
	return path
}

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool {
	return &v
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
