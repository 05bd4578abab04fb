package utils

import (
	"crypto/rand"
	"fmt"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"math/big"
	"strings"
)

// GenerateMedicalID builds <PREFIX>-<INITIALS>-<NNNN> for a role and a full name.
// The suffix is uniform in [1000, 9999]; uniqueness is left to the contract's validate call.
func GenerateMedicalID(role models.Role, fullName string) (string, error) {
	prefix, err := medicalIDPrefix(role)
	if err != nil {
		return "", err
	}

	span := big.NewInt(constvars.MedicalIDSuffixMax - constvars.MedicalIDSuffixMin + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}

	suffix := n.Int64() + constvars.MedicalIDSuffixMin
	return fmt.Sprintf("%s-%s-%d", prefix, medicalIDInitials(fullName), suffix), nil
}

func medicalIDPrefix(role models.Role) (string, error) {
	switch role {
	case models.RoleDonor:
		return constvars.MedicalIDPrefixDonor, nil
	case models.RolePatient:
		return constvars.MedicalIDPrefixPatient, nil
	case models.RolePledge:
		return constvars.MedicalIDPrefixPledge, nil
	}
	return "", fmt.Errorf("no medical id prefix for role %q", role)
}

// medicalIDInitials keeps the first three ASCII letters of the upper-cased name.
func medicalIDInitials(fullName string) string {
	var initials strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(fullName)) {
		if r < 'A' || r > 'Z' {
			continue
		}
		initials.WriteRune(r)
		if initials.Len() == constvars.MedicalIDInitialsLen {
			break
		}
	}
	if initials.Len() == 0 {
		return constvars.MedicalIDInitialsPad
	}
	return initials.String()
}
