package models

import "encoding/json"

// Banner is a homepage banner. The canonical JSON shape uses image_url,
// link_url and is_active. The older image, link and active names are read
// as aliases when the canonical field is absent.
type Banner struct {
	ID       ID     `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (b *Banner) UnmarshalJSON(data []byte) error {
	type canonical Banner
	var raw struct {
		canonical
		Image  string `json:"image"`
		Link   string `json:"link"`
		Active *bool  `json:"active"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Banner(raw.canonical)
	if b.ImageURL == "" {
		b.ImageURL = raw.Image
	}
	if b.LinkURL == "" {
		b.LinkURL = raw.Link
	}
	if b.IsActive == nil {
		b.IsActive = raw.Active
	}
	return nil
}

// Active reports whether the banner is flagged active. Missing means active.
func (b Banner) Active() bool {
	return b.IsActive == nil || *b.IsActive
}
