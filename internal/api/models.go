package api

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse is the success body of POST /api/contact.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// ID is the email provider's delivery identifier.
	ID string `json:"id"`
}

// ContactSuccessMessage is shown to the visitor after a delivered submission.
const ContactSuccessMessage = "Message sent successfully! We'll get back to you soon."
