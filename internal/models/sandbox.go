package models

// WPPost is the subset of a WordPress REST post requested with
// _fields=title,slug,link,featured_media_url.
type WPPost struct {
	Title            Rendered `json:"title"`
	Slug             string   `json:"slug,omitempty"`
	Link             string   `json:"link,omitempty"`
	FeaturedMediaURL string   `json:"featured_media_url,omitempty"`
}

// SandboxPost is a syndicated post from the architecture magazine, ready to render.
type SandboxPost struct {
	Title string `json:"title"`
	Slug  string `json:"slug,omitempty"`
	Link  string `json:"link,omitempty"`
	Image string `json:"image,omitempty"`
}
