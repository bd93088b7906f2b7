package config

import (
	"path/filepath"
	"sort"
)

// SourceFiles returns the files matching pattern in dir and in its
// immediate subdirectories, sorted, with paths relative to dir. This
// mirrors the legacy gate's `*.py */*.py` argument expansion: deeper
// nesting is deliberately not walked.
func SourceFiles(dir, pattern string) ([]string, error) {
	top, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	nested, err := filepath.Glob(filepath.Join(dir, "*", pattern))
	if err != nil {
		return nil, err
	}

	matches := append(top, nested...)
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(dir, m)
		if err != nil {
			rel = m
		}
		files = append(files, rel)
	}
	sort.Strings(files)
	return files, nil
}

// ExpandCommand substitutes the {files} placeholder element with the
// file list. A placeholder with no matching files is dropped so the
// tool sees no stray literal argument.
func ExpandCommand(command, files []string) []string {
	expanded := make([]string, 0, len(command)+len(files))
	for _, arg := range command {
		if arg == FilesPlaceholder {
			expanded = append(expanded, files...)
			continue
		}
		expanded = append(expanded, arg)
	}
	return expanded
}
