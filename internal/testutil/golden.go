// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/chatmenu/internal/component"
)

// FormatPayload renders a menu message as plain text: the message text, a
// "---" separator, then one line per keyboard row with each button label in
// brackets.
func FormatPayload(p component.RenderResult) string {
	var b strings.Builder
	b.WriteString(p.Text)
	if p.Text != "" && !strings.HasSuffix(p.Text, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString("---\n")
	for _, row := range p.Keyboard {
		for i, btn := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("[" + btn.Label + "]")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// AssertGolden compares output with testdata/<goldenName> at the repository
// root. Setting UPDATE_GOLDEN rewrites the file first.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	path := filepath.Join(RepoRoot(t), "testdata", goldenName)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create testdata: %v", err)
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", goldenName, err)
	}
	if string(data) != output {
		t.Fatalf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", goldenName, string(data), output)
	}
}

// RepoRoot walks up from the working directory to the directory holding
// go.mod.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
