package namepool

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestDrawWithoutReplacement(t *testing.T) {
	pool := NewPool([]string{"alpha", "beta", "gamma", "delta", "epsilon"})
	rng := rand.New(rand.NewSource(1))

	names := pool.Draw(rng, 4)
	if len(names) != 4 {
		t.Fatalf("expected 4 names, got %d", len(names))
	}

	seen := make(map[string]struct{})
	for _, name := range names {
		if _, dup := seen[name]; dup {
			t.Fatalf("duplicate name %q in draw", name)
		}
		seen[name] = struct{}{}
	}
}

func TestDrawCappedAtPoolSize(t *testing.T) {
	pool := NewPool([]string{"alpha", "beta"})
	rng := rand.New(rand.NewSource(2))

	names := pool.Draw(rng, 10)
	if len(names) != 2 {
		t.Fatalf("expected draw capped at 2, got %d", len(names))
	}
}

func TestLoadFallsBackWhenFileMissing(t *testing.T) {
	pool := Load(t.TempDir(), "company_names.txt", DefaultCompanyNames)
	if pool.Size() != len(DefaultCompanyNames) {
		t.Fatalf("expected fallback pool of %d, got %d", len(DefaultCompanyNames), pool.Size())
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "One Co\n\nTwo Co\n  Three Co  \n"
	if err := os.WriteFile(filepath.Join(dir, "names.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	pool := Load(dir, "names.txt", []string{"fallback"})
	if pool.Size() != 3 {
		t.Fatalf("expected 3 names from file, got %d", pool.Size())
	}
}
