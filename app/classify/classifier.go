package classify

import (
	"strings"
)

type Category string

const (
	CategoryResult     Category = "result"
	CategoryAdmitCard  Category = "admit_card"
	CategoryLastDate   Category = "last_date"
	CategoryExamUpdate Category = "exam_update"
	CategoryGeneral    Category = "general"
)

// categoryOrder encodes business priority: a result announcement that also
// mentions a deadline is still a result.
var categoryOrder = []Category{
	CategoryResult,
	CategoryAdmitCard,
	CategoryLastDate,
	CategoryExamUpdate,
}

var keywords = map[Category][]string{
	CategoryResult: {
		"result", "results", "declared", "merit list", "cut off", "cutoff",
		"selected", "qualified", "final answer key", "scorecard",
	},
	CategoryAdmitCard: {
		"admit card", "hall ticket", "call letter", "e-admit", "admit",
		"download card", "entry permit",
	},
	CategoryLastDate: {
		"last date", "last day", "deadline", "closing date", "apply before",
		"extended", "application closes", "final date", "hurry", "urgent",
		"only", "days left", "date extended",
	},
	CategoryExamUpdate: {
		"notification", "recruitment", "vacancy", "vacancies", "advertisement",
		"apply online", "application form", "exam date", "schedule", "syllabus",
		"pattern", "eligibility", "post", "posts",
	},
}

// Run maps free text to a category by first-match substring containment,
// case-insensitive. Text matching no keyword is general.
func Run(text string) Category {
	lower := strings.ToLower(text)

	for _, category := range categoryOrder {
		for _, keyword := range keywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}

	return CategoryGeneral
}
