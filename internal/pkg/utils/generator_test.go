package utils

import (
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMedicalID(t *testing.T) {
	pattern := regexp.MustCompile(constvars.RegexMedicalID)

	t.Run("Prefix Per Role", func(t *testing.T) {
		prefixes := map[models.Role]string{
			models.RoleDonor:   "DON-",
			models.RolePatient: "PAT-",
			models.RolePledge:  "PLD-",
		}
		for role, prefix := range prefixes {
			id, err := GenerateMedicalID(role, "Jane Doe")
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(id, prefix+"JAN-"), id)
		}
	})

	t.Run("Always Matches Format", func(t *testing.T) {
		names := []string{"Jane Doe", "  al  ", "o'neil", "J", "1234", "", "Zoë Ünal", "ab"}
		for _, name := range names {
			for i := 0; i < 50; i++ {
				id, err := GenerateMedicalID(models.RolePatient, name)
				require.NoError(t, err)
				assert.Regexp(t, pattern, id, "name %q", name)

				suffix, err := strconv.Atoi(id[len(id)-4:])
				require.NoError(t, err)
				assert.GreaterOrEqual(t, suffix, constvars.MedicalIDSuffixMin)
				assert.LessOrEqual(t, suffix, constvars.MedicalIDSuffixMax)
			}
		}
	})

	t.Run("Initials Skip Non Letters", func(t *testing.T) {
		assert.Equal(t, "ONE", medicalIDInitials("o'neil"))
		assert.Equal(t, "AL", medicalIDInitials("  al  "))
		assert.Equal(t, "X", medicalIDInitials("1234"))
	})

	t.Run("Unknown Role", func(t *testing.T) {
		_, err := GenerateMedicalID(models.Role("admin"), "Jane")
		assert.Error(t, err)
	})
}
