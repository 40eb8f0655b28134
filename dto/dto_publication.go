package dto

// PublicationForm tolerates the loose shapes the admin form produces:
// authors as a comma-joined string or an array, year as a number or a
// numeric string.
type PublicationForm struct {
	Title   string         `json:"title"`
	Authors StringOrList   `json:"authors"`
	Journal string         `json:"journal"`
	Volume  string         `json:"volume"`
	Year    StringOrNumber `json:"year"`
	DOI     string         `json:"doi"`
}

type PublicationPatch struct {
	Title   *string
	Authors *[]string
	Journal *string
	Volume  *string
	Year    *int
	DOI     *string
}
