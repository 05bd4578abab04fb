package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RelayResponse is the envelope of the notification relay endpoint.
type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type RouteNotFound struct {
	Error           string   `json:"error"`
	RequestedPath   string   `json:"requested_path"`
	AvailableRoutes []string `json:"available_routes"`
}
