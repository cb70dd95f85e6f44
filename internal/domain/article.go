package domain

// Article is wellness editorial content. Immutable once fetched; detail views
// are cached individually by id.
type Article struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Body     string `json:"body,omitempty"`
	Category string `json:"category"`
	Date     string `json:"date"`
	ReadTime int    `json:"read_time"`
	ImageURL string `json:"image_url,omitempty"`
}
