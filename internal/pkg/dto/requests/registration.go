package requests

// RegistrationForm is the raw input of a donor, patient or pledge registration.
// Field order is the order rules are checked in; only the first violation is reported.
type RegistrationForm struct {
	FullName     string   `json:"fullname" validate:"required"`
	Age          *int     `json:"age" validate:"required,pledge_age,min=0"`
	Gender       string   `json:"gender" validate:"required,gender"`
	MedicalID    string   `json:"medicalId" validate:"required"`
	Organs       []string `json:"organs" validate:"required,min=1"`
	Weight       *int     `json:"weight" validate:"required,min=20,max=200"`
	Height       *int     `json:"height" validate:"required,min=54,max=272"`
	BloodType    string   `json:"bloodtype"`
	Email        string   `json:"email" validate:"omitempty,email_address"`
	Phone        string   `json:"phone" validate:"omitempty,phone_number"`
	UrgencyLevel *int     `json:"urgencyLevel"`
	Role         string   `json:"-" validate:"registrable_role"`
}
