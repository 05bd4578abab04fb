package utils

import (
	"lifeledger-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		sanitizedArray = append(sanitizedArray, v)
	}
	return sanitizedArray
}

func SanitizeRegistrationForm(input *requests.RegistrationForm) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Gender = strings.TrimSpace(input.Gender)
	input.MedicalID = strings.TrimSpace(input.MedicalID)
	input.BloodType = strings.TrimSpace(input.BloodType)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = strings.ReplaceAll(strings.TrimSpace(input.Phone), " ", "")
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))

	if input.Organs != nil {
		input.Organs = cleanWhiteSpaceFromEachStringOfAnArray(input.Organs)
	}
}

func SanitizeSendEmailRequest(input *requests.SendEmail) {
	input.Email = strings.TrimSpace(input.Email)
	input.Type = strings.ToLower(strings.TrimSpace(input.Type))
}
