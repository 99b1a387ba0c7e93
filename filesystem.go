package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("no such file or directory")

// DocRoot is the directory below which all servable files must live.
type DocRoot struct {
	base string
}

func NewDocRoot(path string) (DocRoot, error) {
	base, err := filepath.Abs(path)
	if err != nil {
		return DocRoot{}, err
	}
	info, err := os.Stat(base)
	if err != nil {
		return DocRoot{}, fmt.Errorf("document root %s does not exist", base)
	}
	if !info.IsDir() {
		return DocRoot{}, fmt.Errorf("document root %s is not a directory", base)
	}
	return DocRoot{base}, nil
}

func (d DocRoot) Base() string {
	return d.base
}

// Resolve maps a request target onto a file under the root. The cleaned
// candidate must keep the root's absolute path as a string prefix;
// anything outside reads as ErrNotFound, so a traversal attempt is
// indistinguishable from a missing file. The check is lexical only and
// does not resolve symlinks. A directory target resolves to its
// index.html when one exists directly inside it.
func (d DocRoot) Resolve(target string) (string, error) {
	rel := strings.TrimPrefix(target, "/")
	full := filepath.Join(d.base, rel)
	if !strings.HasPrefix(full, d.base) {
		return "", ErrNotFound
	}
	info, err := os.Stat(full)
	if err != nil {
		return "", ErrNotFound
	}
	if info.IsDir() {
		full = filepath.Join(full, "index.html")
		if _, err := os.Stat(full); err != nil {
			return "", ErrNotFound
		}
	}
	return full, nil
}

// ReadFile returns the entire contents of a previously resolved path.
func (d DocRoot) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
