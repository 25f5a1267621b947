package idgen

import (
	"strings"
	"testing"
)

func TestAllocateFormat(t *testing.T) {
	a := NewAllocator()

	id := a.Allocate(KindTask)
	if !strings.HasPrefix(id, "task_") {
		t.Fatalf("expected task_ prefix, got %q", id)
	}
	if got := len(id) - len("task_"); got != 12 {
		t.Fatalf("expected 12 char fragment, got %d in %q", got, id)
	}
}

func TestAllocateUnique(t *testing.T) {
	a := NewAllocator()

	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := a.Allocate(KindUser)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestAllocateKindsIndependent(t *testing.T) {
	a := NewAllocator()

	org := a.Allocate(KindOrganization)
	team := a.Allocate(KindTeam)
	if strings.HasPrefix(org, "team_") || strings.HasPrefix(team, "org_") {
		t.Fatalf("kind prefixes crossed: %q %q", org, team)
	}
}
