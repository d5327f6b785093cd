// Package textfile reads template files and persists merged output. Only
// plain-text template types are supported; the merge engine treats the
// content purely as character data.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// supportedExts is the allowlist of template file types.
var supportedExts = map[string]bool{
	".txt": true,
	".md":  true,
	".xml": true,
}

// SupportedExts returns the sorted list of supported template extensions.
func SupportedExts() []string {
	exts := make([]string, 0, len(supportedExts))
	for e := range supportedExts {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return exts
}

func checkExt(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExts[ext] {
		return fmt.Errorf("unsupported file type %q (want one of %s)",
			ext, strings.Join(SupportedExts(), ", "))
	}
	return nil
}

// Read loads the whole template into memory after validating its extension.
func Read(path string) (string, error) {
	if err := checkExt(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write persists merged output atomically: the data is written to a
// temporary file in the destination directory and renamed into place.
// Writing empty data is an error — a merge never produces an empty buffer.
func Write(path, data string) error {
	if data == "" {
		return fmt.Errorf("refusing to write empty output to %s", path)
	}
	if err := checkExt(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
