// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists vim-cmd configuration as a plain key=value text
// file.
//
// File format:
//   - one key=value pair per line, split at the first '=';
//   - keys are case-insensitive and returned lower-cased;
//   - surrounding whitespace of keys and values is ignored;
//   - blank lines, lines starting with '#' and lines without '=' are skipped.
//
// The store knows nothing about which keys are meaningful; that belongs to
// the config package.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const maxLineSize = 64 * 1024

// KV is a single key=value entry of a config file.
type KV struct {
	Key   string
	Value string
}

// LoadKV reads the entries of the config file at path in file order.
//
// A missing file is not an error: LoadKV returns no entries and nil. Any
// other open or read failure is returned wrapped.
func LoadKV(path string) ([]KV, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	entries, err := parseKV(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return entries, nil
}

func parseKV(r io.Reader) ([]KV, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var entries []KV
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}

		entries = append(entries, KV{Key: key, Value: strings.TrimSpace(value)})
	}

	return entries, scanner.Err()
}

// WriteKV replaces the file at path with entries, one key=value per line.
// Parent directories are created as needed. The write is not atomic.
func WriteKV(path string, entries []KV) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}

	var buf bytes.Buffer
	for _, e := range entries {
		if e.Key == "" || strings.ContainsAny(e.Key, "=\r\n") {
			return fmt.Errorf("%w: %q", ErrInvalidKey, e.Key)
		}
		value := strings.NewReplacer("\r", "", "\n", "").Replace(e.Value)
		fmt.Fprintf(&buf, "%s=%s\n", e.Key, value)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
