package idgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Entity kinds with a dedicated identifier prefix.
const (
	KindOrganization = "org"
	KindTeam         = "team"
	KindUser         = "user"
	KindProject      = "proj"
	KindTask         = "task"
	KindSubtask      = "subtask"
	KindMembership   = "membership"
	KindSection      = "section"
	KindComment      = "comment"
	KindField        = "field"
	KindFieldValue   = "fieldval"
	KindTag          = "tag"
	KindTaskTag      = "tasktag"
)

// Allocator issues run-unique, human-legible identifiers of the form
// <kind>_<12 hex chars>. The random fragment is wide enough that collisions
// are not expected, but allocation still checks a per-kind seen set so a
// duplicate can never be handed out.
type Allocator struct {
	seen map[string]map[string]struct{}
}

func NewAllocator() *Allocator {
	return &Allocator{seen: make(map[string]map[string]struct{})}
}

func (a *Allocator) Allocate(kind string) string {
	issued, ok := a.seen[kind]
	if !ok {
		issued = make(map[string]struct{})
		a.seen[kind] = issued
	}

	for {
		id := fmt.Sprintf("%s_%s", kind, fragment())
		if _, dup := issued[id]; dup {
			continue
		}
		issued[id] = struct{}{}
		return id
	}
}

func fragment() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
