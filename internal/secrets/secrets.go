// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text
// key files: the filename is the key name and the trimmed contents are
// the value. skinscan keeps google-search-api-key,
// google-search-engine-id, and gemini-api-key under .secrets/.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every regular file in dir into a key-to-value map. A
// missing directory is a normal outcome and yields an empty map.
// Dotfiles and subdirectories are ignored; unreadable files are skipped
// with a warning on diag (nil discards). Values are whitespace-trimmed
// and empty values dropped.
func Load(dir string, diag io.Writer) (map[string]string, error) {
	if diag == nil {
		diag = io.Discard
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(diag, "warning: skipping secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}
