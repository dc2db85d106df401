package models

// PlaceholderLink is used when a posting has no external link.
const PlaceholderLink = "#"

// JobRecord represents one posting row from the job sheet
type JobRecord struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Deadline    string `json:"deadline"`
	Link        string `json:"link"`
	Description string `json:"description"`
	OriginalAd  string `json:"original_ad"`
}
