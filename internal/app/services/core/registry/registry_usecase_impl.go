package registry

import (
	"context"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/app/services/shared/contract"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/responses"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type registryUsecase struct {
	Log *zap.Logger
}

func NewRegistryUsecase(logger *zap.Logger) contracts.RegistryUsecase {
	return &registryUsecase{
		Log: logger,
	}
}

// Search runs the existence check first and reads the record only when it exists.
func (uc *registryUsecase) Search(ctx context.Context, session *contracts.Session, role models.Role, medicalID string) (*models.Registrant, error) {
	medicalID = strings.TrimSpace(medicalID)
	if medicalID == "" {
		return nil, exceptions.ErrEmptyMedicalID(strings.ToLower(role.Label()))
	}
	if !session.IsConnected() {
		return nil, exceptions.ErrWalletNotConnected(nil)
	}

	calls := callsFor(session.Contract, role)
	found, err := calls.validate(ctx, medicalID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrRegistrantNotFound(role.Label(), medicalID)
	}

	registrant, err := uc.fetch(ctx, calls, role, medicalID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("registryUsecase.Search found registrant",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRoleKey, string(role)),
		zap.String(constvars.LoggingMedicalIDKey, medicalID),
	)
	return registrant, nil
}

// ListAll fetches records one at a time in id-list order. The first failing fetch stops
// the listing; records already visited are returned with the error.
func (uc *registryUsecase) ListAll(ctx context.Context, session *contracts.Session, role models.Role, visit contracts.VisitFunc) ([]*models.Registrant, error) {
	if !session.IsConnected() {
		return nil, exceptions.ErrWalletNotConnected(nil)
	}
	requestID := utils.GetRequestID(ctx)
	calls := callsFor(session.Contract, role)

	count, err := calls.count(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := calls.ids(ctx)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("registryUsecase.ListAll listing registrants",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, string(role)),
		zap.Uint64(constvars.LoggingCountKey, count),
		zap.Int(constvars.LoggingIDCountKey, len(ids)),
	)

	// the reported count bounds the listing; ids past it are not fetched
	if count < uint64(len(ids)) {
		ids = ids[:count]
	}

	registrants := make([]*models.Registrant, 0, len(ids))
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return registrants, err
		}

		registrant, err := uc.fetch(ctx, calls, role, id)
		if err != nil {
			uc.Log.Error("registryUsecase.ListAll fetch failed, stopping",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingIndexKey, i),
				zap.String(constvars.LoggingMedicalIDKey, id),
				zap.Error(err),
			)
			return registrants, err
		}

		registrants = append(registrants, registrant)
		if visit != nil {
			if err := visit(i, registrant); err != nil {
				return registrants, err
			}
		}
	}
	return registrants, nil
}

func (uc *registryUsecase) Stats(ctx context.Context, session *contracts.Session) (*responses.RegistryStats, error) {
	if !session.IsConnected() {
		return nil, exceptions.ErrWalletNotConnected(nil)
	}
	donors, err := session.Contract.GetCountOfDonors(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := session.Contract.GetCountOfPatients(ctx)
	if err != nil {
		return nil, err
	}
	return &responses.RegistryStats{Donors: donors, Patients: patients}, nil
}

func (uc *registryUsecase) fetch(ctx context.Context, calls roleCalls, role models.Role, medicalID string) (*models.Registrant, error) {
	tuple, err := calls.get(ctx, medicalID)
	if err != nil {
		return nil, err
	}
	registrant, err := registrantFromTuple(tuple)
	if err != nil {
		return nil, exceptions.ErrContractDecodeTuple(err, calls.getMethod)
	}
	registrant.Role = role
	registrant.MedicalID = medicalID
	return registrant, nil
}

// registrantFromTuple maps (fullName, age, gender, bloodType, organs, weight, height)
// by position.
func registrantFromTuple(tuple []interface{}) (*models.Registrant, error) {
	var (
		registrant models.Registrant
		err        error
		age        uint64
		weight     uint64
		height     uint64
	)
	if registrant.FullName, err = contract.TupleString(tuple, contract.TupleFullName); err != nil {
		return nil, err
	}
	if age, err = contract.TupleUint64(tuple, contract.TupleAge); err != nil {
		return nil, err
	}
	if registrant.Gender, err = contract.TupleString(tuple, contract.TupleGender); err != nil {
		return nil, err
	}
	if registrant.BloodType, err = contract.TupleString(tuple, contract.TupleBloodType); err != nil {
		return nil, err
	}
	if registrant.Organs, err = contract.TupleStrings(tuple, contract.TupleOrgans); err != nil {
		return nil, err
	}
	if weight, err = contract.TupleUint64(tuple, contract.TupleWeight); err != nil {
		return nil, err
	}
	if height, err = contract.TupleUint64(tuple, contract.TupleHeight); err != nil {
		return nil, err
	}
	registrant.Age = int(age)
	registrant.Weight = int(weight)
	registrant.Height = int(height)
	return &registrant, nil
}

type roleCalls struct {
	getMethod string
	validate  func(ctx context.Context, medicalID string) (bool, error)
	get       func(ctx context.Context, medicalID string) ([]interface{}, error)
	count     func(ctx context.Context) (uint64, error)
	ids       func(ctx context.Context) ([]string, error)
}

func callsFor(registry contracts.RegistryContract, role models.Role) roleCalls {
	if role.RecordRole() == models.RolePatient {
		return roleCalls{
			getMethod: contract.MethodGetPatient,
			validate:  registry.ValidatePatient,
			get:       registry.GetPatient,
			count:     registry.GetCountOfPatients,
			ids:       registry.GetAllPatientIDs,
		}
	}
	return roleCalls{
		getMethod: contract.MethodGetDonor,
		validate:  registry.ValidateDonor,
		get:       registry.GetDonor,
		count:     registry.GetCountOfDonors,
		ids:       registry.GetAllDonorIDs,
	}
}
