// Package filter selects files for processing from positional arguments and
// include/exclude glob patterns.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolve takes positional args (files or directories) and include/exclude
// glob patterns. Explicit files are added directly, bypassing filtering;
// directories are walked and filtered. hasIncludes distinguishes "no include
// filtering requested" from an empty pattern list. Returns matched files and
// the total number of candidates scanned.
func Resolve(args, includes, excludes []string, hasIncludes bool) (files []string, scanned int, err error) {
	includes = normalizePatterns(includes)
	excludes = normalizePatterns(excludes)

	seen := make(map[string]struct{})

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			if _, ok := seen[arg]; ok {
				continue
			}

			seen[arg] = struct{}{}
			files = append(files, arg)

			continue
		}

		walked, total, err := walkDir(arg, includes, excludes, hasIncludes)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			if _, ok := seen[path]; ok {
				continue
			}

			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no files matched the provided patterns: %v", args)
	}

	return files, scanned, nil
}

// walkDir walks root recursively, returning files that pass the filter.
func walkDir(root string, includes, excludes []string, hasIncludes bool) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		total++

		clean := filepath.ToSlash(filepath.Clean(path))

		included := !hasIncludes || matchAny(includes, clean)
		if included && !matchAny(excludes, clean) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}

// matchAny reports whether path matches any pattern. Patterns are tried
// against the full slash-separated path first, then against the base name, so
// "*.docx" matches files in any directory.
func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}

		if ok, err := filepath.Match(pattern, filepath.Base(path)); err == nil && ok {
			return true
		}
	}

	return false
}

// normalizePatterns strips leading "./" from patterns so they match cleaned
// paths.
func normalizePatterns(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = strings.TrimPrefix(p, "./")
	}

	return out
}
