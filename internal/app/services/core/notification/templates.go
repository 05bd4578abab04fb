package notification

import (
	"bytes"
	"embed"
	"html/template"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
)

//go:embed templates/*.html
var templateFS embed.FS

type emailTemplate struct {
	subject string
	body    *template.Template
}

var emailTemplates = map[string]emailTemplate{
	constvars.EmailTypeDonor: {
		subject: constvars.EmailDonorSubject,
		body:    template.Must(template.ParseFS(templateFS, "templates/donor.html")),
	},
	constvars.EmailTypePatient: {
		subject: constvars.EmailPatientSubject,
		body:    template.Must(template.ParseFS(templateFS, "templates/patient.html")),
	},
}

func (t emailTemplate) render(data *requests.NotificationData) (string, error) {
	var buf bytes.Buffer
	if err := t.body.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
