package contact

// SubmissionRequest represents a contact form submission
type SubmissionRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"required,min=5,max=200"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// SubmissionResponse represents the response after a submission is accepted
type SubmissionResponse struct {
	Success bool `json:"success"`
}
