package domain

import "time"

// NewsArticle is a situational-awareness article shown alongside the map.
type NewsArticle struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Summary   string         `json:"summary"`
	ImageURL  string         `json:"image_url,omitempty"`
	Source    string         `json:"source"`
	Link      string         `json:"link,omitempty"`
	Published time.Time      `json:"published"`
	TypeTags  []DisasterType `json:"type_tags,omitempty"`
}
