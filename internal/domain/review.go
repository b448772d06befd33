package domain

// Review is a private, device-local star rating with an optional comment.
// Reviews are immutable after creation and removed only by explicit
// deletion. CreatedAt carries the ISO-8601 string exactly as persisted.
type Review struct {
	ID        string `json:"id"`
	CourtID   string `json:"courtId"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt"`
}
