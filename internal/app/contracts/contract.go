package contracts

import (
	"context"
	"lifeledger-service/internal/app/models"
)

// ContractBackend is the raw call surface of the deployed registry contract.
// Return values of Call are positional, in ABI output order.
type ContractBackend interface {
	Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error)
	EstimateGas(ctx context.Context, method string, args ...interface{}) (uint64, error)
	Transact(ctx context.Context, gasLimit uint64, method string, args ...interface{}) (*models.RegistrationResult, error)
	// Identity is the address writes are sent from, empty when the backend is read-only.
	Identity() string
	Address() string
	Close() error
}

// RegistryContract is the fixed method set of the donor/patient registry.
type RegistryContract interface {
	Address() string
	Identity() string

	EstimateSetDonors(ctx context.Context, registrant *models.Registrant) (uint64, error)
	EstimateSetPatients(ctx context.Context, registrant *models.Registrant) (uint64, error)
	SetDonors(ctx context.Context, registrant *models.Registrant, gasLimit uint64) (*models.RegistrationResult, error)
	SetPatients(ctx context.Context, registrant *models.Registrant, gasLimit uint64) (*models.RegistrationResult, error)

	GetDonor(ctx context.Context, medicalID string) ([]interface{}, error)
	GetPatient(ctx context.Context, medicalID string) ([]interface{}, error)
	ValidateDonor(ctx context.Context, medicalID string) (bool, error)
	ValidatePatient(ctx context.Context, medicalID string) (bool, error)
	GetCountOfDonors(ctx context.Context) (uint64, error)
	GetCountOfPatients(ctx context.Context) (uint64, error)
	GetAllDonorIDs(ctx context.Context) ([]string, error)
	GetAllPatientIDs(ctx context.Context) ([]string, error)
}
