package models

// Post is a blog or news post. Most text and image fields have synonyms left
// over from older backend versions; see package format for the resolution order.
type Post struct {
	ID               ID       `json:"id,omitempty"`
	Slug             string   `json:"slug,omitempty"`
	Title            string   `json:"title,omitempty"`
	Excerpt          string   `json:"excerpt,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	Description      string   `json:"description,omitempty"`
	Summary          string   `json:"summary,omitempty"`
	Content          string   `json:"content,omitempty"`
	Link             string   `json:"link,omitempty"`
	Date             string   `json:"date,omitempty"`
	PublishedAt      string   `json:"publishedAt,omitempty"`
	CreatedAt        string   `json:"createdAt,omitempty"`
	Category         *Named   `json:"category,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Status           string   `json:"status,omitempty"`

	Image         string `json:"image,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
	FeaturedImage string `json:"featuredImage,omitempty"`
	CoverImage    string `json:"coverImage,omitempty"`
	HeroImage     string `json:"heroImage,omitempty"`

	Author       *Named `json:"author,omitempty"`
	AuthorName   string `json:"author_name,omitempty"`
	AuthorAvatar string `json:"author_avatar,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}
