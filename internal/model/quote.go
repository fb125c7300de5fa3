package model

// Quote is a single catalog entry the content source serves by agenda.
type Quote struct {
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Category Agenda   `json:"category"`
	Tags     []string `json:"tags,omitempty"`
}
