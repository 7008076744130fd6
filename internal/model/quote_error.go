package model

// QuoteError records a rejected request line.
type QuoteError struct {
	Line  int       `json:"line"`
	ID    string    `json:"id,omitempty"`
	Kind  QuoteKind `json:"kind,omitempty"`
	Error string    `json:"error"`
}
