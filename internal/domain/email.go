package domain

// Email is a fully rendered message ready for a delivery provider.
type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Validate checks the fields every provider needs.
func (e *Email) Validate() error {
	if e.From == "" {
		return ErrEmptySender
	}
	if len(e.To) == 0 || e.To[0] == "" {
		return ErrEmptyRecipient
	}
	return nil
}

// Receipt acknowledges a delivered message.
type Receipt struct {
	// ID is the provider's identifier for the message.
	ID string `json:"id"`
}
