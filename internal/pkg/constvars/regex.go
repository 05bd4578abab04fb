package constvars

const (
	RegexEmail       = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexPhoneNumber = `^[\+]?[1-9][\d]{0,15}$`
	RegexMedicalID   = `^[A-Z]{3}-[A-Z]{1,3}-\d{4}$`
)
