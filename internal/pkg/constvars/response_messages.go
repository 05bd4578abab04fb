package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Registration messages
	RegistrationSuccessMessage = "Registration Successful!"
	GenerateMedicalIDSuccess   = "medical id generated successfully"
	GetRegistryStatsSuccess    = "get registry stats successfully"

	// Search messages
	SearchLoadingFormat = "Searching for %s..."
	SearchFoundFormat   = "%s found successfully!"
	SearchFailedFormat  = "%s search failed: %s"
	SearchAwaitingMatch = "Awaiting Match"

	// Relay messages
	EmailSentSuccessMessage   = "Email sent successfully"
	EmailQueuedSuccessMessage = "Email queued successfully"

	// Health messages
	HealthStatusOK          = "OK"
	HealthEmailConfigured   = "Configured"
	HealthEmailUnconfigured = "Not configured"
	HealthServiceActive     = "Active"
	HealthServiceInactive   = "Inactive"
	HealthBlockchainReady   = "Ready"
	HealthBlockchainDown    = "Unavailable"
)
