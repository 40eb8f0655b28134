package dto

// SearchResult is one hit of the free-text search across publications,
// research projects and team members.
type SearchResult struct {
	Type        string `json:"type"` // "publication" | "research" | "team"
	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Abstract    string `json:"abstract,omitempty"`
	Description string `json:"description,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Year        int    `json:"year,omitempty"`
}
