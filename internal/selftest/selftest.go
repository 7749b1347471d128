// Package selftest implements the translator's internal regression suite
// (§6's performRegularTests / performErrorCheckingTests toggles): every
// `.addaat` fixture under a testdata root is translated and diffed against
// its golden `.c` sibling; fixtures under an "errors" subdirectory are
// instead expected to fail to parse or type-check.
package selftest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/oxhq/morfx/internal/translate"
)

// CaseResult is the outcome of one fixture.
type CaseResult struct {
	Name string
	Pass bool
	Diff string
	Err  error
}

// Run walks root for `**/*.addaat` fixtures and runs each against its
// sibling `.c` golden file (same path, extension swapped). Fixtures found
// under an "errors/" directory are expected to fail translation; every
// other fixture is expected to succeed and match its golden output
// byte-for-byte.
func Run(root string) ([]CaseResult, error) {
	matches, err := doublestar.Glob(os.DirFS(root), "**/*.addaat")
	if err != nil {
		return nil, fmt.Errorf("globbing fixtures: %w", err)
	}

	var results []CaseResult
	for _, rel := range matches {
		path := filepath.Join(root, rel)
		expectError := strings.Contains(filepath.ToSlash(rel), "errors/")
		results = append(results, runCase(rel, path, expectError))
	}
	return results, nil
}

func runCase(name, path string, expectError bool) CaseResult {
	goldenPath := path[:len(path)-len(filepath.Ext(path))] + ".c"
	golden, goldenErr := os.ReadFile(goldenPath)
	res, err := translate.File(path, translate.Options{})
	if goldenErr == nil {
		// translate.File writes its output to the golden path; restore it.
		defer os.WriteFile(goldenPath, golden, 0o644)
	}
	if expectError {
		if err == nil {
			os.Remove(res.OutputPath)
			return CaseResult{Name: name, Pass: false, Err: fmt.Errorf("expected failure, got none")}
		}
		return CaseResult{Name: name, Pass: true}
	}
	if err != nil {
		return CaseResult{Name: name, Pass: false, Err: err}
	}
	if goldenErr != nil {
		os.Remove(res.OutputPath)
		return CaseResult{Name: name, Pass: false, Err: fmt.Errorf("reading golden file: %w", goldenErr)}
	}

	if string(golden) == res.Generated {
		return CaseResult{Name: name, Pass: true}
	}
	return CaseResult{Name: name, Pass: false, Diff: unifiedDiff(string(golden), res.Generated)}
}

func unifiedDiff(golden, generated string) string {
	diff := difflib.UnifiedDiff{
		A:        strings.Split(golden, "\n"),
		B:        strings.Split(generated, "\n"),
		FromFile: "golden",
		ToFile:   "generated",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("--- golden\n+++ generated\n@@ changes @@\n%d bytes -> %d bytes",
			len(golden), len(generated))
	}
	return text
}
