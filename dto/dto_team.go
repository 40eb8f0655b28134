package dto

// TeamForm is the admin form payload for a team member. List-valued
// fields arrive as single comma-joined strings (the form edits them
// that way) and are split at submit time.
type TeamForm struct {
	Name              string `json:"name" form:"name"`
	Role              string `json:"role" form:"role"`
	RoleOrder         string `json:"roleOrder" form:"roleOrder"`
	Bio               string `json:"bio" form:"bio"`
	Email             string `json:"email" form:"email"`
	Linkedin          string `json:"linkedin" form:"linkedin"`
	Twitter           string `json:"twitter" form:"twitter"`
	Education         string `json:"education" form:"education"`
	ResearchInterests string `json:"researchInterests" form:"researchInterests"`
	Awards            string `json:"awards" form:"awards"`
	CurrentPosition   string `json:"currentPosition" form:"currentPosition"`
	Achievements      string `json:"achievements" form:"achievements"`
	ImageURL          string `json:"imageUrl" form:"imageUrl"`
}

// TeamPatch carries partial-field updates; nil means "leave unchanged".
type TeamPatch struct {
	Name              *string
	Role              *string
	RoleOrder         *int
	Bio               *string
	ImageURL          *string
	Email             *string
	Linkedin          *string
	Twitter           *string
	Education         *[]string
	ResearchInterests *[]string
	Awards            *[]string
	CurrentPosition   *string
	Achievements      *string
}
