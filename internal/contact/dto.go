package contact

// ContactRequest is a site visitor's message to a directory member.
type ContactRequest struct {
	FirstName string `json:"firstName" binding:"required,personname"`
	LastName  string `json:"lastName" binding:"required,personname"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,usphone"`
	Message   string `json:"message" binding:"required,message"`
}

type ContactResponse struct {
	EmailTriggered bool `json:"emailTriggered"`
}

// automationPayload is what the notification automation receives.
type automationPayload struct {
	ContactID string `json:"contactId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}
