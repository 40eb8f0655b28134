package model

// Research project status / category values. Anything else coming in
// through a form falls back to the defaults below.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusUpcoming  = "upcoming"

	CategoryAnalytical = "analytical"
	CategoryChemical   = "chemical"
	CategoryMass       = "mass"
	CategoryOmics      = "omics"

	// EndDateOngoing is the sentinel used instead of an ISO date for
	// projects with no end date.
	EndDateOngoing = "Ongoing"
)

type ResearchProject struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	ImageURL        string   `json:"imageUrl"`
	Team            []string `json:"team"`
	Funding         string   `json:"funding"`
	Status          string   `json:"status"`
	Category        string   `json:"category"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
}

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusCompleted || s == StatusUpcoming
}

func ValidCategory(c string) bool {
	return c == CategoryAnalytical || c == CategoryChemical || c == CategoryMass || c == CategoryOmics
}
