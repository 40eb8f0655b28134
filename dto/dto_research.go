package dto

type ResearchForm struct {
	Title           string `json:"title" form:"title"`
	Description     string `json:"description" form:"description"`
	LongDescription string `json:"longDescription" form:"longDescription"`
	Team            string `json:"team" form:"team"`
	Funding         string `json:"funding" form:"funding"`
	Status          string `json:"status" form:"status"`
	Category        string `json:"category" form:"category"`
	StartDate       string `json:"startDate" form:"startDate"`
	EndDate         string `json:"endDate" form:"endDate"`
	ImageURL        string `json:"imageUrl" form:"imageUrl"`
}

type ResearchPatch struct {
	Title           *string
	Description     *string
	LongDescription *string
	ImageURL        *string
	Team            *[]string
	Funding         *string
	Status          *string
	Category        *string
	StartDate       *string
	EndDate         *string
}
