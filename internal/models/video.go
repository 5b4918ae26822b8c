package models

// Thumb is a single thumbnail reference.
type Thumb struct {
	URL string `json:"url,omitempty"`
}

// Thumbnails groups the thumbnail sizes the YouTube proxy returns.
type Thumbnails struct {
	URL     string `json:"url,omitempty"`
	Default *Thumb `json:"default,omitempty"`
	Medium  *Thumb `json:"medium,omitempty"`
	High    *Thumb `json:"high,omitempty"`
}

func (t *Thumbnails) DefaultURL() string {
	if t == nil || t.Default == nil {
		return ""
	}
	return t.Default.URL
}

func (t *Thumbnails) MediumURL() string {
	if t == nil || t.Medium == nil {
		return ""
	}
	return t.Medium.URL
}

func (t *Thumbnails) HighURL() string {
	if t == nil || t.High == nil {
		return ""
	}
	return t.High.URL
}

// YoutubeVideo is a video from the department channel.
type YoutubeVideo struct {
	ID           ID          `json:"id,omitempty"`
	VideoID      string      `json:"videoId,omitempty"`
	Title        string      `json:"title,omitempty"`
	Description  string      `json:"description,omitempty"`
	Thumbnail    string      `json:"thumbnail,omitempty"`
	Thumbnails   *Thumbnails `json:"thumbnails,omitempty"`
	PublishedAt  string      `json:"publishedAt,omitempty"`
	ChannelTitle string      `json:"channelTitle,omitempty"`
	Channel      string      `json:"channel,omitempty"`
	Author       string      `json:"author,omitempty"`
	URL          string      `json:"url,omitempty"`
	Link         string      `json:"link,omitempty"`
}
