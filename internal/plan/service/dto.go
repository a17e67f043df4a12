package service

// DreamPlanDTO is the wire representation of a dream plan. Audit metadata is
// never exchanged with clients; the store owns it.
type DreamPlanDTO struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate,omitempty"` // YYYY-MM-DD
	Status      string `json:"status,omitempty"`
	ExtraNotes  string `json:"extraNotes,omitempty"`
}
