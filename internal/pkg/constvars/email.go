package constvars

const (
	EmailTypeDonor   = "donor"
	EmailTypePatient = "patient"
)

const (
	EmailDonorSubject   = "LifeLedger - Donor Registration Confirmed!"
	EmailPatientSubject = "LifeLedger - Patient Registration Confirmed!"
)

const (
	EmailSendHTMLSubjectFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailFromHeaderFormat      = "\"%s\" <%s>"
	EmailDateLayout            = "January 2, 2006"
)
