package service

import "encoding/json"

// TimelineEventDTO is the wire representation of a timeline event. Audit
// metadata is never exchanged with clients; the store owns it.
type TimelineEventDTO struct {
	ID                 string          `json:"id,omitempty"`
	Title              string          `json:"title"`
	EventDate          string          `json:"eventDate"` // YYYY-MM-DD
	Description        string          `json:"description"`
	MediaURL           string          `json:"mediaUrl,omitempty"`
	InteractionType    string          `json:"interactionType,omitempty"`
	InteractionPayload json.RawMessage `json:"interactionPayload,omitempty"`
}

// UploadRequest carries the multipart fields of an upload-and-create call.
type UploadRequest struct {
	FileData           []byte
	ContentType        string
	Title              string
	EventDate          string
	Description        string
	InteractionType    string
	InteractionPayload string
}
