// Package testsupport holds golden-file helpers shared by package tests.
// Paths are relative to the calling package's testdata directory.
package testsupport

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// UpdateEnv names the environment variable that rewrites golden files.
const UpdateEnv = "UPDATE_GOLDENS"

// Text returns the content of testdata/name.
func Text(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("testsupport: read %s: %v", name, err)
	}
	return string(data)
}

// JSON decodes the fixture testdata/name into dest.
func JSON(t *testing.T, name string, dest any) {
	t.Helper()
	if err := json.Unmarshal([]byte(Text(t, name)), dest); err != nil {
		t.Fatalf("testsupport: decode %s: %v", name, err)
	}
}

// Golden compares rendered markup with testdata/name and fails with a
// "(-want +got)" diff. With UPDATE_GOLDENS set the file is rewritten instead.
func Golden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if os.Getenv(UpdateEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("testsupport: mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("testsupport: write %s: %v", name, err)
		}
		return
	}
	if diff := cmp.Diff(Text(t, name), got); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// Capture runs render against a buffer and returns the returned string and
// the buffer contents, which callers expect to match.
func Capture(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()
	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("testsupport: render: %v", err)
	}
	return out, buf.String()
}
