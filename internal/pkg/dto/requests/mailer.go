package requests

type EmailPayload struct {
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Cc       []string `json:"cc,omitempty"`
	Bcc      []string `json:"bcc,omitempty"`
	HTMLCode string   `json:"html_code"`
	Encoded  bool     `json:"encoded"`
}

// SendEmail is the body of POST /api/send-email.
type SendEmail struct {
	Email string            `json:"email" validate:"required"`
	Type  string            `json:"type" validate:"required"`
	Data  *NotificationData `json:"data" validate:"required"`
}

type NotificationData struct {
	FullName         string `json:"fullname"`
	MedicalID        string `json:"medicalId"`
	BloodType        string `json:"bloodtype"`
	Organs           string `json:"organs,omitempty"`
	RequiredOrgan    string `json:"requiredOrgan,omitempty"`
	UrgencyLevel     int    `json:"urgencyLevel,omitempty"`
	RegistrationDate string `json:"registrationDate,omitempty"`
}
