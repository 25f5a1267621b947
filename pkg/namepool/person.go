package namepool

import (
	"math/rand"
)

// PersonLocale carries given and family names for one name locale. User
// generation mixes several locales so the demographic shape of generated
// names is not uniform.
type PersonLocale struct {
	Locale     string
	FirstNames []string
	LastNames  []string
}

func (l PersonLocale) PickFirst(rng *rand.Rand) string {
	return l.FirstNames[rng.Intn(len(l.FirstNames))]
}

func (l PersonLocale) PickLast(rng *rand.Rand) string {
	return l.LastNames[rng.Intn(len(l.LastNames))]
}

var PersonLocales = []PersonLocale{
	{
		Locale: "en_US",
		FirstNames: []string{
			"James", "Mary", "Robert", "Patricia", "John", "Jennifer",
			"Michael", "Linda", "David", "Elizabeth", "William", "Barbara",
			"Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah",
			"Christopher", "Karen", "Daniel", "Lisa", "Matthew", "Nancy",
		},
		LastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
			"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
			"Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
		},
	},
	{
		Locale: "en_GB",
		FirstNames: []string{
			"Oliver", "Olivia", "George", "Amelia", "Harry", "Isla",
			"Noah", "Ava", "Jack", "Emily", "Charlie", "Sophia",
			"Jacob", "Grace", "Alfie", "Mia", "Freddie", "Poppy",
		},
		LastNames: []string{
			"Jones", "Williams", "Taylor", "Davies", "Evans", "Thomas",
			"Roberts", "Walker", "Wright", "Robinson", "Thompson", "White",
			"Hughes", "Edwards", "Green", "Lewis", "Wood", "Harris",
		},
	},
	{
		Locale: "en_IE",
		FirstNames: []string{
			"Sean", "Aoife", "Conor", "Saoirse", "Cian", "Niamh",
			"Liam", "Ciara", "Darragh", "Roisin", "Oisin", "Caoimhe",
			"Fionn", "Aisling", "Eoin", "Sinead", "Cathal", "Orla",
		},
		LastNames: []string{
			"Murphy", "Kelly", "O'Sullivan", "Walsh", "Smith", "O'Brien",
			"Byrne", "Ryan", "O'Connor", "O'Neill", "O'Reilly", "Doyle",
			"McCarthy", "Gallagher", "Doherty", "Kennedy", "Lynch", "Murray",
		},
	},
	{
		Locale: "en_AU",
		FirstNames: []string{
			"Lachlan", "Charlotte", "Cooper", "Ruby", "Ethan", "Chloe",
			"Angus", "Matilda", "Flynn", "Evie", "Hamish", "Willow",
			"Banjo", "Harper", "Jai", "Indiana", "Darcy", "Imogen",
		},
		LastNames: []string{
			"Nguyen", "Chen", "Singh", "Campbell", "Kelly", "Ryan",
			"Stewart", "Mitchell", "Graham", "Fraser", "MacDonald", "Hall",
			"Clarke", "Scott", "Reid", "Bennett", "Wang", "Patel",
		},
	},
}
