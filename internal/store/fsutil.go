package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrDecode is returned when a source file is not valid UTF-8 text.
var ErrDecode = errors.New("not valid UTF-8 text")

const utf8BOM = "\ufeff"

// ReadSource reads a whole card file as text.
func ReadSource(path string) (string, error) {
	path = filepath.Clean(strings.TrimSpace(path))
	if path == "." || path == "" {
		return "", errors.New("read source: missing path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("read source %s: %w", path, ErrDecode)
	}
	return strings.TrimPrefix(string(b), utf8BOM), nil
}

// WriteFileAtomic writes b to path via a temp file in the same directory and a
// rename, so readers never observe a partially written file.
func WriteFileAtomic(path string, b []byte, perm os.FileMode) error {
	path = filepath.Clean(strings.TrimSpace(path))
	if path == "." || path == "" {
		return errors.New("write file: missing path")
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	_ = os.Chmod(tmp, perm)
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
