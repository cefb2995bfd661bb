package entity

// Badge is a static catalogue entry. The catalogue is reference data and is
// never mutated at runtime; earned badges are tracked as ids on the Profile.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Requirement string `json:"requirement"`
	Points      int    `json:"points"`
	Rarity      string `json:"rarity"`
}

const (
	BadgeFirstSave    = "first-save"
	BadgeThreeDay     = "3-day-streak"
	BadgeWeekWarrior  = "week-warrior"
	BadgeBudgetNinja  = "budget-ninja"
	BadgeSaverSupreme = "saver-supreme"
)

var BadgeCatalogue = []Badge{
	{
		ID:          BadgeFirstSave,
		Name:        "First Save",
		Description: "Dismissed your first impulse purchase",
		Category:    "milestone",
		Requirement: "Dismiss 1 wishlist item",
		Points:      50,
		Rarity:      "common",
	},
	{
		ID:          BadgeThreeDay,
		Name:        "3-Day Streak",
		Description: "Three days without impulse purchases",
		Category:    "streak",
		Requirement: "3-day streak",
		Points:      100,
		Rarity:      "common",
	},
	{
		ID:          BadgeWeekWarrior,
		Name:        "Week Warrior",
		Description: "A full week of mindful spending",
		Category:    "streak",
		Requirement: "7-day streak",
		Points:      250,
		Rarity:      "uncommon",
	},
	{
		ID:          BadgeBudgetNinja,
		Name:        "Budget Ninja",
		Description: "Stayed under budget for a month",
		Category:    "savings",
		Requirement: "Stay under monthly budget",
		Points:      500,
		Rarity:      "rare",
	},
	{
		ID:          BadgeSaverSupreme,
		Name:        "Saver Supreme",
		Description: "Saved $500 by dismissing impulses",
		Category:    "savings",
		Requirement: "Save $500 total",
		Points:      1000,
		Rarity:      "epic",
	},
}

func BadgeByID(id string) (Badge, bool) {
	for _, b := range BadgeCatalogue {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
