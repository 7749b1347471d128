package analyzer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oxhq/morfx/internal/analyzer"
	"github.com/oxhq/morfx/internal/langdef"
)

func translateFixture(t *testing.T, path string) (string, error) {
	t.Helper()
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	g, err := langdef.New()
	if err != nil {
		t.Fatalf("building grammar: %v", err)
	}
	match := g.Match(src)
	if !match.Success {
		t.Fatalf("failed to parse %s", path)
	}
	return analyzer.Translate(match.Root, analyzer.Options{})
}

func TestFixtures(t *testing.T) {
	cases := []string{"function", "point", "loop"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := translateFixture(t, filepath.Join("..", "..", "testdata", "basic", name+".addaat"))
			if err != nil {
				t.Fatalf("translate: %v", err)
			}
			want, err := os.ReadFile(filepath.Join("..", "..", "testdata", "basic", name+".c"))
			if err != nil {
				t.Fatalf("reading golden file: %v", err)
			}
			if got != string(want) {
				t.Errorf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, string(want))
			}
		})
	}
}

func TestErrorFixtures(t *testing.T) {
	cases := []string{"void_array", "redefinition", "static_member_access", "enum_constant_expr"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := translateFixture(t, filepath.Join("..", "..", "testdata", "errors", name+".addaat"))
			if err == nil {
				t.Fatalf("expected a semantic error, got none")
			}
		})
	}
}
