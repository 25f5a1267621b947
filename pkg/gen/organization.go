package gen

import (
	"math/rand"
	"strings"
	"time"

	"github.com/workseed/workseed/pkg/idgen"
	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/namepool"
	"github.com/workseed/workseed/pkg/timegen"
)

var employeeCounts = []int{200, 500, 1000, 2000, 5000, 10000}

// OrganizationGenerator produces the workspace root entities. Names are
// drawn without replacement so they stay unique across the run.
type OrganizationGenerator struct {
	rng       *rand.Rand
	ids       *idgen.Allocator
	sampler   *timegen.Sampler
	companies *namepool.Pool
}

func NewOrganizationGenerator(rng *rand.Rand, ids *idgen.Allocator, sampler *timegen.Sampler, dataDir string) *OrganizationGenerator {
	return &OrganizationGenerator{
		rng:       rng,
		ids:       ids,
		sampler:   sampler,
		companies: namepool.Load(dataDir, "company_names.txt", namepool.DefaultCompanyNames),
	}
}

func (g *OrganizationGenerator) Generate(count int, start, end time.Time) []model.Organization {
	names := g.companies.Draw(g.rng, count)
	organizations := make([]model.Organization, 0, len(names))

	for _, name := range names {
		organizations = append(organizations, model.Organization{
			ID:            g.ids.Allocate(idgen.KindOrganization),
			Name:          name,
			Domain:        domainFor(name),
			Industry:      namepool.DefaultIndustries[g.rng.Intn(len(namepool.DefaultIndustries))],
			EmployeeCount: employeeCounts[g.rng.Intn(len(employeeCounts))],
			CreatedAt:     g.sampler.CreatedAt(start, end),
		})
	}
	return organizations
}

func domainFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "")) + ".com"
}

// TeamGenerator produces teams within one organization, reusing the same
// without-replacement pattern scoped to that organization. Lead assignment
// happens later, once memberships exist.
type TeamGenerator struct {
	rng     *rand.Rand
	ids     *idgen.Allocator
	sampler *timegen.Sampler
	teams   *namepool.Pool
}

func NewTeamGenerator(rng *rand.Rand, ids *idgen.Allocator, sampler *timegen.Sampler, dataDir string) *TeamGenerator {
	return &TeamGenerator{
		rng:     rng,
		ids:     ids,
		sampler: sampler,
		teams:   namepool.Load(dataDir, "team_names.txt", namepool.DefaultTeamNames),
	}
}

func (g *TeamGenerator) Generate(organizationID string, count int, start, end time.Time) []model.Team {
	names := g.teams.Draw(g.rng, count)
	teams := make([]model.Team, 0, len(names))

	for _, name := range names {
		teams = append(teams, model.Team{
			ID:             g.ids.Allocate(idgen.KindTeam),
			OrganizationID: organizationID,
			Name:           name,
			CreatedAt:      g.sampler.CreatedAt(start, end),
		})
	}
	return teams
}
