package model

// TeamMember is one persisted record in the "teams" collection.
// Every field is defaulted at the read boundary so JSON consumers
// never see a missing value.
type TeamMember struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	RoleOrder         int      `json:"roleOrder"`
	Bio               string   `json:"bio"`
	ImageURL          string   `json:"imageUrl"`
	Email             string   `json:"email"`
	Linkedin          string   `json:"linkedin"`
	Twitter           string   `json:"twitter,omitempty"`
	Education         []string `json:"education"`
	ResearchInterests []string `json:"researchInterests"`
	Awards            []string `json:"awards"`
	CurrentPosition   string   `json:"currentPosition,omitempty"`
	Achievements      string   `json:"achievements,omitempty"`
	IsAlumni          bool     `json:"isAlumni"`
}

// DefaultRoleOrder sorts unranked roles last.
const DefaultRoleOrder = 999
