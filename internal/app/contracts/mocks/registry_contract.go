// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"context"
	"lifeledger-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type RegistryContract struct {
	mock.Mock
}

func (m *RegistryContract) Address() string  { return m.Called().String(0) }
func (m *RegistryContract) Identity() string { return m.Called().String(0) }

func (m *RegistryContract) EstimateSetDonors(ctx context.Context, registrant *models.Registrant) (uint64, error) {
	args := m.Called(ctx, registrant)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *RegistryContract) EstimateSetPatients(ctx context.Context, registrant *models.Registrant) (uint64, error) {
	args := m.Called(ctx, registrant)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *RegistryContract) SetDonors(ctx context.Context, registrant *models.Registrant, gasLimit uint64) (*models.RegistrationResult, error) {
	args := m.Called(ctx, registrant, gasLimit)
	result, _ := args.Get(0).(*models.RegistrationResult)
	return result, args.Error(1)
}

func (m *RegistryContract) SetPatients(ctx context.Context, registrant *models.Registrant, gasLimit uint64) (*models.RegistrationResult, error) {
	args := m.Called(ctx, registrant, gasLimit)
	result, _ := args.Get(0).(*models.RegistrationResult)
	return result, args.Error(1)
}

func (m *RegistryContract) GetDonor(ctx context.Context, medicalID string) ([]interface{}, error) {
	args := m.Called(ctx, medicalID)
	tuple, _ := args.Get(0).([]interface{})
	return tuple, args.Error(1)
}

func (m *RegistryContract) GetPatient(ctx context.Context, medicalID string) ([]interface{}, error) {
	args := m.Called(ctx, medicalID)
	tuple, _ := args.Get(0).([]interface{})
	return tuple, args.Error(1)
}

func (m *RegistryContract) ValidateDonor(ctx context.Context, medicalID string) (bool, error) {
	args := m.Called(ctx, medicalID)
	return args.Bool(0), args.Error(1)
}

func (m *RegistryContract) ValidatePatient(ctx context.Context, medicalID string) (bool, error) {
	args := m.Called(ctx, medicalID)
	return args.Bool(0), args.Error(1)
}

func (m *RegistryContract) GetCountOfDonors(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *RegistryContract) GetCountOfPatients(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *RegistryContract) GetAllDonorIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *RegistryContract) GetAllPatientIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
