package request

// EmailReceiptRequest is the request body for emailing a bill receipt.
type EmailReceiptRequest struct {
	Email string `json:"email" binding:"required,email"`
}
