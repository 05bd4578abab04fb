package models

type Registrant struct {
	Role         Role     `json:"role"`
	FullName     string   `json:"fullname"`
	Age          int      `json:"age"`
	Gender       string   `json:"gender"`
	MedicalID    string   `json:"medical_id"`
	BloodType    string   `json:"bloodtype"`
	Organs       []string `json:"organs"`
	Weight       int      `json:"weight"`
	Height       int      `json:"height"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	UrgencyLevel int      `json:"urgency_level,omitempty"`
}

// BMI is weight over height squared, zero when height is unknown.
func (r *Registrant) BMI() float64 {
	if r.Height <= 0 {
		return 0
	}
	meters := float64(r.Height) / 100
	return float64(r.Weight) / (meters * meters)
}
