package gen

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/workseed/workseed/pkg/idgen"
	"github.com/workseed/workseed/pkg/model"
)

// Fixed catalog of custom fields an organization can define.
var fieldCatalog = map[model.FieldType][]string{
	model.FieldText:         {"Status", "Component", "Release Version"},
	model.FieldSingleSelect: {"Priority", "Effort Level", "Risk Level", "Phase"},
	model.FieldMultiSelect:  {"Labels", "Skills Required", "Dependencies"},
	model.FieldNumber:       {"Story Points", "Estimated Hours", "Complexity Score"},
	model.FieldDropdown:     {"Team", "Quarter"},
}

// Enumerated values for single-select fields.
var fieldValueOptions = map[string][]string{
	"Status":       {"Not Started", "In Progress", "Blocked", "Complete"},
	"Priority":     {"Low", "Medium", "High", "Critical"},
	"Effort Level": {"XS", "S", "M", "L", "XL"},
	"Risk Level":   {"Low", "Medium", "High"},
	"Phase":        {"Phase 1", "Phase 2", "Phase 3", "Phase 4"},
	"Quarter":      {"Q1", "Q2", "Q3", "Q4"},
}

var genericFieldValues = []string{"Value1", "Value2"}

// CustomFieldGenerator samples an organization's field definitions once from
// the catalog and attaches per-task values shaped by each field's type.
type CustomFieldGenerator struct {
	rng *rand.Rand
	ids *idgen.Allocator
	now func() time.Time
}

func NewCustomFieldGenerator(rng *rand.Rand, ids *idgen.Allocator) *CustomFieldGenerator {
	return &CustomFieldGenerator{rng: rng, ids: ids, now: time.Now}
}

func (g *CustomFieldGenerator) GenerateDefinitions(organizationID string) []model.CustomFieldDefinition {
	names := make([]string, 0, 16)
	typeByName := make(map[string]model.FieldType, 16)
	for fieldType, fieldNames := range fieldCatalog {
		for _, name := range fieldNames {
			names = append(names, name)
			typeByName[name] = fieldType
		}
	}

	count := 8 + g.rng.Intn(6)
	definitions := make([]model.CustomFieldDefinition, 0, count)
	for _, idx := range sampleIndices(g.rng, len(names), count) {
		name := names[idx]
		definitions = append(definitions, model.CustomFieldDefinition{
			ID:             g.ids.Allocate(idgen.KindField),
			OrganizationID: organizationID,
			Name:           name,
			FieldType:      typeByName[name],
			CreatedAt:      g.now().AddDate(0, 0, -(30 + g.rng.Intn(151))),
		})
	}
	return definitions
}

func (g *CustomFieldGenerator) GenerateValues(tasks []model.Task, definitions []model.CustomFieldDefinition) []model.CustomFieldValue {
	values := make([]model.CustomFieldValue, 0, len(tasks))

	for _, task := range tasks {
		if g.rng.Float64() > 0.60 {
			continue
		}

		for _, idx := range sampleIndices(g.rng, len(definitions), 1+g.rng.Intn(3)) {
			field := definitions[idx]
			values = append(values, model.CustomFieldValue{
				ID:            g.ids.Allocate(idgen.KindFieldValue),
				CustomFieldID: field.ID,
				TaskID:        task.ID,
				Value:         g.fieldValue(field),
				CreatedAt:     task.CreatedAt,
			})
		}
	}
	return values
}

func (g *CustomFieldGenerator) fieldValue(field model.CustomFieldDefinition) string {
	switch field.FieldType {
	case model.FieldSingleSelect:
		options, ok := fieldValueOptions[field.Name]
		if !ok {
			options = genericFieldValues
		}
		return options[g.rng.Intn(len(options))]
	case model.FieldNumber:
		return strconv.Itoa(1 + g.rng.Intn(50))
	default:
		return field.Name
	}
}
