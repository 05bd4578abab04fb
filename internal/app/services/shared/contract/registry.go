// Package contract binds the donor/patient registry contract to the service, over either
// an Ethereum JSON-RPC node or the local leveldb ledger emulator.
package contract

import (
	"context"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/metrics"
	"math/big"
	"time"
)

type registry struct {
	backend contracts.ContractBackend
	metrics *metrics.Metrics
}

func NewRegistry(backend contracts.ContractBackend, m *metrics.Metrics) contracts.RegistryContract {
	if m == nil {
		m = metrics.NewNop()
	}
	return &registry{
		backend: backend,
		metrics: m,
	}
}

func (r *registry) Address() string {
	return r.backend.Address()
}

func (r *registry) Identity() string {
	return r.backend.Identity()
}

func (r *registry) EstimateSetDonors(ctx context.Context, registrant *models.Registrant) (uint64, error) {
	return r.estimate(ctx, MethodSetDonors, donorArgs(registrant)...)
}

func (r *registry) EstimateSetPatients(ctx context.Context, registrant *models.Registrant) (uint64, error) {
	return r.estimate(ctx, MethodSetPatients, patientArgs(registrant)...)
}

func (r *registry) SetDonors(ctx context.Context, registrant *models.Registrant, gasLimit uint64) (*models.RegistrationResult, error) {
	return r.transact(ctx, gasLimit, MethodSetDonors, donorArgs(registrant)...)
}

func (r *registry) SetPatients(ctx context.Context, registrant *models.Registrant, gasLimit uint64) (*models.RegistrationResult, error) {
	return r.transact(ctx, gasLimit, MethodSetPatients, patientArgs(registrant)...)
}

func (r *registry) GetDonor(ctx context.Context, medicalID string) ([]interface{}, error) {
	return r.call(ctx, MethodGetDonor, medicalID)
}

func (r *registry) GetPatient(ctx context.Context, medicalID string) ([]interface{}, error) {
	return r.call(ctx, MethodGetPatient, medicalID)
}

func (r *registry) ValidateDonor(ctx context.Context, medicalID string) (bool, error) {
	return r.callBool(ctx, MethodValidateDonor, medicalID)
}

func (r *registry) ValidatePatient(ctx context.Context, medicalID string) (bool, error) {
	return r.callBool(ctx, MethodValidatePatient, medicalID)
}

func (r *registry) GetCountOfDonors(ctx context.Context) (uint64, error) {
	return r.callUint64(ctx, MethodGetCountOfDonors)
}

func (r *registry) GetCountOfPatients(ctx context.Context) (uint64, error) {
	return r.callUint64(ctx, MethodGetCountOfPatients)
}

func (r *registry) GetAllDonorIDs(ctx context.Context) ([]string, error) {
	return r.callStrings(ctx, MethodGetAllDonorIDs)
}

func (r *registry) GetAllPatientIDs(ctx context.Context) ([]string, error) {
	return r.callStrings(ctx, MethodGetAllPatientIDs)
}

func (r *registry) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	start := time.Now()
	out, err := r.backend.Call(ctx, method, args...)
	r.metrics.ObserveContractCall(method, err != nil, time.Since(start).Seconds())
	return out, err
}

func (r *registry) estimate(ctx context.Context, method string, args ...interface{}) (uint64, error) {
	start := time.Now()
	gas, err := r.backend.EstimateGas(ctx, method, args...)
	r.metrics.ObserveContractCall(method+".estimate", err != nil, time.Since(start).Seconds())
	return gas, err
}

func (r *registry) transact(ctx context.Context, gasLimit uint64, method string, args ...interface{}) (*models.RegistrationResult, error) {
	start := time.Now()
	result, err := r.backend.Transact(ctx, gasLimit, method, args...)
	r.metrics.ObserveContractCall(method, err != nil, time.Since(start).Seconds())
	return result, err
}

func (r *registry) callBool(ctx context.Context, method string, args ...interface{}) (bool, error) {
	out, err := r.call(ctx, method, args...)
	if err != nil {
		return false, err
	}
	value, err := TupleBool(out, 0)
	if err != nil {
		return false, exceptions.ErrContractDecodeTuple(err, method)
	}
	return value, nil
}

func (r *registry) callUint64(ctx context.Context, method string) (uint64, error) {
	out, err := r.call(ctx, method)
	if err != nil {
		return 0, err
	}
	value, err := TupleUint64(out, 0)
	if err != nil {
		return 0, exceptions.ErrContractDecodeTuple(err, method)
	}
	return value, nil
}

func (r *registry) callStrings(ctx context.Context, method string) ([]string, error) {
	out, err := r.call(ctx, method)
	if err != nil {
		return nil, err
	}
	value, err := TupleStrings(out, 0)
	if err != nil {
		return nil, exceptions.ErrContractDecodeTuple(err, method)
	}
	return value, nil
}

// donorArgs is the setDonors argument list, in ABI order.
func donorArgs(registrant *models.Registrant) []interface{} {
	organs := registrant.Organs
	if organs == nil {
		organs = []string{}
	}
	return []interface{}{
		registrant.FullName,
		big.NewInt(int64(registrant.Age)),
		registrant.Gender,
		registrant.MedicalID,
		registrant.BloodType,
		organs,
		big.NewInt(int64(registrant.Weight)),
		big.NewInt(int64(registrant.Height)),
	}
}

// patientArgs is the setPatients argument list: the donor list plus the urgency level.
func patientArgs(registrant *models.Registrant) []interface{} {
	return append(donorArgs(registrant), big.NewInt(int64(registrant.UrgencyLevel)))
}
