package responses

type Health struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	Version    string `json:"version"`
	Email      string `json:"email"`
	Blockchain string `json:"blockchain"`
}

type Status struct {
	Platform        string   `json:"platform"`
	Version         string   `json:"version"`
	Blockchain      string   `json:"blockchain"`
	Network         string   `json:"network"`
	ContractAddress string   `json:"contract_address"`
	EmailService    string   `json:"email_service"`
	MailerDriver    string   `json:"mailer_driver"`
	AvailableRoutes []string `json:"available_routes"`
	Uptime          float64  `json:"uptime"`
}
