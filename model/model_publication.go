package model

type Publication struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Journal string   `json:"journal"`
	Volume  string   `json:"volume"`
	Year    int      `json:"year"`
	DOI     string   `json:"doi"`
}
