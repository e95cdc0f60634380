// Package fs saves generated posts to plain-text files.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/scribe"
)

// Save writes text to dir under the export name derived from title and
// returns the written path. Blank text is rejected with
// scribe.ErrNoResult. Existing files are never overwritten: a
// numeric suffix is appended instead (post.txt, post_1.txt, post_2.txt).
func Save(dir, title, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("save %q: %w", title, scribe.ErrNoResult)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".scribe-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("chmod temp file: %w", err)
	}
	// Link fails when the target exists, so a file created after freeName
	// looked is never replaced; pick again instead.
	for attempt := 0; ; attempt++ {
		name, err := freeName(dir, scribe.ExportName(title))
		if err != nil {
			return "", err
		}
		path := filepath.Join(dir, name)
		err = os.Link(tmp.Name(), path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrExist) || attempt == maxAttempts-1 {
			return "", fmt.Errorf("link %s: %w", name, err)
		}
	}
}

const maxAttempts = 100

// freeName returns name when it is free in dir, otherwise stem_N.txt with N
// one above the highest suffix already present.
func freeName(dir, name string) (string, error) {
	stem := strings.TrimSuffix(name, ".txt")
	matches, err := doublestar.Glob(os.DirFS(dir), quoteMeta(stem)+"*.txt")
	if err != nil {
		return "", fmt.Errorf("glob existing files: %w", err)
	}
	if !slices.Contains(matches, name) {
		return name, nil
	}
	highest := 0
	for _, m := range matches {
		suffix, ok := strings.CutPrefix(strings.TrimSuffix(m, ".txt"), stem+"_")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s_%d.txt", stem, highest+1), nil
}

func quoteMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
