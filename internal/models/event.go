package models

// EventItem is a department event as returned by /events.
type EventItem struct {
	ID               ID     `json:"id,omitempty"`
	Title            string `json:"title,omitempty"`
	Name             string `json:"name,omitempty"`
	StartTime        string `json:"start_time,omitempty"`
	EndTime          string `json:"end_time,omitempty"`
	Location         string `json:"location,omitempty"`
	Description      string `json:"description,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	Summary          string `json:"summary,omitempty"`
	BannerURL        string `json:"banner_url,omitempty"`
	Content          string `json:"content,omitempty"`
	Status           string `json:"status,omitempty"`
}
