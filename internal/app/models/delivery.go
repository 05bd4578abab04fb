package models

import "time"

// DeliveryRecord is one attempt to hand a confirmation email to the mail system.
type DeliveryRecord struct {
	ID        string    `bson:"_id,omitempty"`
	RequestID string    `bson:"requestId,omitempty"`
	Email     string    `bson:"email"`
	Type      string    `bson:"type"`
	MedicalID string    `bson:"medicalId"`
	Driver    string    `bson:"driver"`
	Status    string    `bson:"status"`
	Error     string    `bson:"error,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
}
