package constvars

const (
	MailerMessageTypeHeader     = "message_type"
	MailerRequeueStrategyHeader = "requeue_strategy"
	MailerMessageTypeJSON       = "JSON"
	MailerRequeueStrategyDrop   = "DROP"
)

const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusQueued = "queued"
	DeliveryStatusFailed = "failed"
)
