package main

import (
	"bytes"
	"context"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/exceptions"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLedger(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	root, _ := newRootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(append([]string{"--driver", "ledger", "--db-path", dbPath}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func registerDonorArgs(medicalID string) []string {
	return []string{
		"register", "donor",
		"--name", "Jane Doe",
		"--age", "30",
		"--gender", "Female",
		"--medical-id", medicalID,
		"--organs", "Kidney,Liver",
		"--weight", "60",
		"--height", "170",
		"--blood-type", "O+",
		"--no-notify",
	}
}

func TestLedgerCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger")

	t.Run("Register Donor", func(t *testing.T) {
		out, err := runLedger(t, dbPath, registerDonorArgs("DON-JD-1234")...)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Donor DON-JD-1234 0x"))
	})

	t.Run("Duplicate Medical ID Is Rejected", func(t *testing.T) {
		_, err := runLedger(t, dbPath, registerDonorArgs("DON-JD-1234")...)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindDuplicate, exceptions.KindOf(err))
	})

	t.Run("Search Shows The Record", func(t *testing.T) {
		out, err := runLedger(t, dbPath, "search", "donor", "DON-JD-1234")
		require.NoError(t, err)
		assert.Contains(t, out, "Jane Doe")
		assert.Contains(t, out, "30 years")
		assert.Contains(t, out, "Kidney, Liver")
	})

	t.Run("Search Unknown ID", func(t *testing.T) {
		out, err := runLedger(t, dbPath, "search", "donor", "DON-XX-9999")
		require.Error(t, err)
		assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))
		assert.Contains(t, out, "Donor not found")
	})

	t.Run("List Prints A Table", func(t *testing.T) {
		out, err := runLedger(t, dbPath, "list", "donor")
		require.NoError(t, err)
		assert.Contains(t, out, "Medical ID")
		assert.Contains(t, out, "DON-JD-1234")
	})

	t.Run("Empty List Prints Nothing", func(t *testing.T) {
		out, err := runLedger(t, dbPath, "list", "patient")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Stats Counts Records", func(t *testing.T) {
		out, err := runLedger(t, dbPath, "stats")
		require.NoError(t, err)
		assert.Contains(t, out, "Donors:   1")
		assert.Contains(t, out, "Patients: 0")
	})
}

func TestRegisterMissingFieldFailsValidation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger")

	_, err := runLedger(t, dbPath, "register", "patient", "--name", "John Roe", "--no-notify")
	require.Error(t, err)
	assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
}

func TestMedicalIDCommand(t *testing.T) {
	out, err := runLedger(t, t.TempDir(), "medical-id", "pledge", "Ada Lovelace")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PLD-ADA-\d{4}\n$`), out)
}

func TestRegistrationFormFromFlags(t *testing.T) {
	cmd := newRegisterCommand(&runtime{})
	require.NoError(t, cmd.ParseFlags([]string{
		"--name", "  Ada Lovelace ",
		"--weight", "55",
		"--organs", "Heart, Lungs",
		"--generate-id",
	}))

	form, err := registrationFormFromFlags(cmd.Flags(), models.RolePatient)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", form.FullName)
	assert.Equal(t, string(models.RolePatient), form.Role)
	assert.Nil(t, form.Age)
	assert.Nil(t, form.Height)
	require.NotNil(t, form.Weight)
	assert.Equal(t, 55, *form.Weight)
	assert.Equal(t, []string{"Heart", "Lungs"}, form.Organs)
	assert.Regexp(t, `^PAT-ADA-\d{4}$`, form.MedicalID)
}

func TestTableRowWriter(t *testing.T) {
	t.Run("Empty Table Renders Nothing", func(t *testing.T) {
		out := new(bytes.Buffer)
		writer := newTableRowWriter(out)
		writer.Render()
		assert.Empty(t, out.String())
	})

	t.Run("Header And Rows", func(t *testing.T) {
		out := new(bytes.Buffer)
		writer := newTableRowWriter(out)
		require.NoError(t, writer.WriteHeader([]string{"Index", "Full Name"}))
		require.NoError(t, writer.WriteRow([]string{"1", "Jane Doe"}))
		writer.Render()

		assert.Contains(t, out.String(), "Full Name")
		assert.Contains(t, out.String(), "Jane Doe")
	})
}
