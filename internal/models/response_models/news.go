package response_models

type NewsItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate,omitempty"`
	Source  string `json:"source"`
	Summary string `json:"summary"`
}
