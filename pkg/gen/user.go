package gen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/workseed/workseed/pkg/idgen"
	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/namepool"
	"github.com/workseed/workseed/pkg/timegen"
)

// UserGenerator produces workspace members. Names mix several locales for
// demographic diversity; emails are globally unique, resolved with a numeric
// suffix on collision.
type UserGenerator struct {
	rng     *rand.Rand
	ids     *idgen.Allocator
	sampler *timegen.Sampler
	now     func() time.Time
}

func NewUserGenerator(rng *rand.Rand, ids *idgen.Allocator, sampler *timegen.Sampler) *UserGenerator {
	return &UserGenerator{rng: rng, ids: ids, sampler: sampler, now: time.Now}
}

func (g *UserGenerator) Generate(organizationID string, count int, start, end time.Time) []model.User {
	users := make([]model.User, 0, count)
	usedEmails := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		locale := namepool.PersonLocales[g.rng.Intn(len(namepool.PersonLocales))]
		first := locale.PickFirst(g.rng)
		last := locale.PickLast(g.rng)

		email := uniqueEmail(first, last, usedEmails)
		usedEmails[email] = struct{}{}

		lastSeen := g.now().AddDate(0, 0, -g.rng.Intn(31))

		users = append(users, model.User{
			ID:             g.ids.Allocate(idgen.KindUser),
			OrganizationID: organizationID,
			Email:          email,
			Name:           first + " " + last,
			FirstName:      first,
			LastName:       last,
			CreatedAt:      g.sampler.CreatedAt(start, end),
			IsActive:       g.rng.Float64() > 0.05,
			LastSeen:       &lastSeen,
		})
	}
	return users
}

func uniqueEmail(first, last string, used map[string]struct{}) string {
	base := strings.ReplaceAll(strings.ToLower(first+"."+last), " ", "_")
	email := base + "@company.com"
	for counter := 1; ; counter++ {
		if _, taken := used[email]; !taken {
			return email
		}
		email = fmt.Sprintf("%s%d@company.com", base, counter)
	}
}

// Team sizes follow a fixed categorical distribution centered on 15.
var (
	teamSizes       = []int{8, 12, 15, 20, 25}
	teamSizeWeights = []float64{0.10, 0.25, 0.35, 0.20, 0.10}
)

// MembershipGenerator assigns users to teams. The first member selected for
// each team carries the lead role.
type MembershipGenerator struct {
	rng     *rand.Rand
	ids     *idgen.Allocator
	sampler *timegen.Sampler
}

func NewMembershipGenerator(rng *rand.Rand, ids *idgen.Allocator, sampler *timegen.Sampler) *MembershipGenerator {
	return &MembershipGenerator{rng: rng, ids: ids, sampler: sampler}
}

func (g *MembershipGenerator) Generate(teams []model.Team, users []model.User, windowStart time.Time) []model.TeamMembership {
	memberships := make([]model.TeamMembership, 0, len(teams)*15)
	assigned := make(map[string]struct{}, len(users))

	for _, team := range teams {
		size := teamSizes[weightedIndex(g.rng, teamSizeWeights)]
		members := g.selectMembers(users, assigned, size)

		for i, user := range members {
			assigned[user.ID] = struct{}{}

			role := model.RoleMember
			if i == 0 {
				role = model.RoleLead
			}

			// A member can join no earlier than the org epoch and no earlier
			// than their own account creation.
			joinEnd := windowStart
			if user.CreatedAt.After(windowStart) {
				joinEnd = user.CreatedAt
			}

			memberships = append(memberships, model.TeamMembership{
				ID:       g.ids.Allocate(idgen.KindMembership),
				TeamID:   team.ID,
				UserID:   user.ID,
				JoinedAt: g.sampler.CreatedAt(windowStart, joinEnd),
				Role:     role,
				IsActive: user.IsActive,
			})
		}
	}
	return memberships
}

// selectMembers prefers users without any team yet, falling back to the full
// pool when the requested size exceeds the remaining unassigned users.
func (g *MembershipGenerator) selectMembers(users []model.User, assigned map[string]struct{}, size int) []model.User {
	unassigned := make([]model.User, 0, len(users))
	for _, u := range users {
		if _, taken := assigned[u.ID]; !taken {
			unassigned = append(unassigned, u)
		}
	}

	pool := unassigned
	if len(pool) < size {
		pool = users
	}

	selected := make([]model.User, 0, size)
	for _, idx := range sampleIndices(g.rng, len(pool), size) {
		selected = append(selected, pool[idx])
	}
	return selected
}

// ApplyTeamLeads back-fills each team's lead from the first-sampled lead
// membership. Teams are produced before their members exist, so lead
// resolution is deliberately a second pass over the team list.
func ApplyTeamLeads(teams []model.Team, memberships []model.TeamMembership) []model.Team {
	leads := make(map[string]string, len(teams))
	for _, m := range memberships {
		if m.Role != model.RoleLead {
			continue
		}
		if _, ok := leads[m.TeamID]; !ok {
			leads[m.TeamID] = m.UserID
		}
	}

	resolved := make([]model.Team, len(teams))
	copy(resolved, teams)
	for i := range resolved {
		if lead, ok := leads[resolved[i].ID]; ok {
			leadID := lead
			resolved[i].LeadUserID = &leadID
		}
	}
	return resolved
}
