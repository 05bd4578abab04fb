package utils

import (
	"lifeledger-service/internal/pkg/constvars"
	"time"
)

// FormatRegistrationDate renders t in the given IANA zone, falling back to UTC.
func FormatRegistrationDate(t time.Time, timezone string) string {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
	}
	return t.In(location).Format(constvars.EmailDateLayout)
}
