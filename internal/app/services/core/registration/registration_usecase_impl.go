package registration

import (
	"context"
	"fmt"
	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/metrics"
	"lifeledger-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type registrationUsecase struct {
	Log      *zap.Logger
	Locker   contracts.LockerService
	Notifier contracts.Notifier
	Metrics  *metrics.Metrics
	MinGas   uint64
	LockTTL  time.Duration
	Timezone string

	now           func() time.Time
	notifications sync.WaitGroup
}

func NewRegistrationUsecase(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	locker contracts.LockerService,
	notifier contracts.Notifier,
	m *metrics.Metrics,
) contracts.RegistrationUsecase {
	minGas := internalConfig.Contract.MinGas
	if minGas == 0 {
		minGas = constvars.DefaultMinGas
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &registrationUsecase{
		Log:      logger,
		Locker:   locker,
		Notifier: notifier,
		Metrics:  m,
		MinGas:   minGas,
		LockTTL:  time.Duration(internalConfig.Registration.LockTTLInSeconds) * time.Second,
		Timezone: internalConfig.App.Timezone,
		now:      time.Now,
	}
}

func (uc *registrationUsecase) Wait() {
	uc.notifications.Wait()
}

func (uc *registrationUsecase) Register(ctx context.Context, session *contracts.Session, form *requests.RegistrationForm) (*models.RegistrationOutcome, error) {
	outcome := &models.RegistrationOutcome{
		Role:      models.Role(form.Role),
		MedicalID: form.MedicalID,
		State:     models.StateIdle,
	}

	uc.transition(ctx, outcome, models.StateValidating)
	if err := utils.ValidateRegistrationForm(form); err != nil {
		return uc.fail(ctx, outcome, err)
	}
	if !session.IsConnected() {
		return uc.fail(ctx, outcome, exceptions.ErrWalletNotConnected(nil))
	}

	registrant := registrantFromForm(form)

	uc.transition(ctx, outcome, models.StateCheckingDuplicate)
	if uc.Locker != nil {
		lockKey := fmt.Sprintf(constvars.RegistrationLockKeyFormat, registrant.MedicalID)
		acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, uc.LockTTL)
		if err != nil {
			return uc.fail(ctx, outcome, err)
		}
		if !acquired {
			return uc.fail(ctx, outcome, exceptions.ErrRegistrationLocked(nil))
		}
		defer func() {
			if err := uc.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
				uc.Log.Warn("registrationUsecase.Register failed to release lock",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
					zap.String(constvars.LoggingRedisKey, lockKey),
					zap.Error(err),
				)
			}
		}()
	}

	exists, err := uc.exists(ctx, session.Contract, registrant)
	if err != nil {
		return uc.fail(ctx, outcome, err)
	}
	if exists {
		return uc.fail(ctx, outcome, exceptions.ErrDuplicateMedicalID(nil))
	}

	uc.transition(ctx, outcome, models.StateSubmitting)
	if session.Identity() == "" {
		return uc.fail(ctx, outcome, exceptions.ErrWalletNotConnected(nil))
	}

	result, err := uc.submit(ctx, session.Contract, registrant)
	if err != nil {
		return uc.fail(ctx, outcome, err)
	}
	outcome.Result = result

	uc.transition(ctx, outcome, models.StateConfirming)
	uc.dispatchNotification(ctx, registrant)

	uc.transition(ctx, outcome, models.StateDone)
	return outcome, nil
}

func (uc *registrationUsecase) exists(ctx context.Context, registry contracts.RegistryContract, registrant *models.Registrant) (bool, error) {
	if registrant.Role.RecordRole() == models.RolePatient {
		return registry.ValidatePatient(ctx, registrant.MedicalID)
	}
	return registry.ValidateDonor(ctx, registrant.MedicalID)
}

func (uc *registrationUsecase) submit(ctx context.Context, registry contracts.RegistryContract, registrant *models.Registrant) (*models.RegistrationResult, error) {
	estimate := registry.EstimateSetDonors
	write := registry.SetDonors
	if registrant.Role.RecordRole() == models.RolePatient {
		estimate = registry.EstimateSetPatients
		write = registry.SetPatients
	}

	gasEstimate, err := estimate(ctx, registrant)
	if err != nil {
		return nil, err
	}

	gasLimit := gasEstimate
	if gasLimit < uc.MinGas {
		gasLimit = uc.MinGas
	}

	uc.Log.Info("registrationUsecase.Register submitting contract write",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingMedicalIDKey, registrant.MedicalID),
		zap.Uint64(constvars.LoggingGasEstimateKey, gasEstimate),
		zap.Uint64(constvars.LoggingGasLimitKey, gasLimit),
	)

	// a dispatched write runs to its receipt even when the caller goes away
	result, err := write(context.WithoutCancel(ctx), registrant, gasLimit)
	if err != nil {
		return nil, err
	}
	result.GasLimit = gasLimit

	uc.Log.Info("registrationUsecase.Register contract write confirmed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingMedicalIDKey, registrant.MedicalID),
		zap.String(constvars.LoggingTxHashKey, result.TxHash),
		zap.Uint64(constvars.LoggingBlockNumberKey, result.BlockNumber),
	)
	return result, nil
}

// dispatchNotification sends one confirmation in the background. Its outcome never
// affects the registration.
func (uc *registrationUsecase) dispatchNotification(ctx context.Context, registrant *models.Registrant) {
	requestID := utils.GetRequestID(ctx)
	if uc.Notifier == nil || registrant.Email == "" {
		uc.Log.Info("registrationUsecase.Register no email on file, skipping confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMedicalIDKey, registrant.MedicalID),
		)
		return
	}

	request := uc.buildNotification(registrant)
	notifyCtx := context.WithoutCancel(ctx)

	uc.notifications.Add(1)
	go func() {
		defer uc.notifications.Done()
		if err := uc.Notifier.Notify(notifyCtx, request); err != nil {
			uc.Log.Warn("registrationUsecase.Register confirmation email failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMedicalIDKey, registrant.MedicalID),
				zap.String(constvars.LoggingEmailTypeKey, request.Type),
				zap.Error(err),
			)
		}
	}()
}

func (uc *registrationUsecase) buildNotification(registrant *models.Registrant) *requests.SendEmail {
	data := &requests.NotificationData{
		FullName:         registrant.FullName,
		MedicalID:        registrant.MedicalID,
		BloodType:        registrant.BloodType,
		RegistrationDate: utils.FormatRegistrationDate(uc.now(), uc.Timezone),
	}

	emailType := constvars.EmailTypeDonor
	if registrant.Role.RecordRole() == models.RolePatient {
		emailType = constvars.EmailTypePatient
		data.RequiredOrgan = strings.Join(registrant.Organs, ", ")
		data.UrgencyLevel = registrant.UrgencyLevel
	} else {
		data.Organs = strings.Join(registrant.Organs, ", ")
	}

	return &requests.SendEmail{
		Email: registrant.Email,
		Type:  emailType,
		Data:  data,
	}
}

func (uc *registrationUsecase) transition(ctx context.Context, outcome *models.RegistrationOutcome, to models.WorkflowState) {
	from := outcome.Transition(to)
	uc.Metrics.RecordTransition(string(outcome.Role), string(to))
	uc.Log.Debug("registrationUsecase.Register state transition",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRoleKey, string(outcome.Role)),
		zap.String(constvars.LoggingMedicalIDKey, outcome.MedicalID),
		zap.String(constvars.LoggingFromStateKey, string(from)),
		zap.String(constvars.LoggingStateKey, string(to)),
	)
}

func (uc *registrationUsecase) fail(ctx context.Context, outcome *models.RegistrationOutcome, err error) (*models.RegistrationOutcome, error) {
	failedAt := outcome.State
	uc.transition(ctx, outcome, models.StateError)
	uc.Log.Error("registrationUsecase.Register failed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRoleKey, string(outcome.Role)),
		zap.String(constvars.LoggingMedicalIDKey, outcome.MedicalID),
		zap.String(constvars.LoggingFromStateKey, string(failedAt)),
		zap.String(constvars.LoggingErrorTypeKey, string(exceptions.KindOf(err))),
		zap.Error(err),
	)
	return outcome, err
}

func registrantFromForm(form *requests.RegistrationForm) *models.Registrant {
	registrant := &models.Registrant{
		Role:      models.Role(form.Role),
		FullName:  form.FullName,
		Gender:    form.Gender,
		MedicalID: form.MedicalID,
		BloodType: form.BloodType,
		Organs:    append([]string(nil), form.Organs...),
		Email:     form.Email,
		Phone:     form.Phone,
	}
	if gender, ok := models.ParseGender(form.Gender); ok {
		registrant.Gender = string(gender)
	}
	if form.Age != nil {
		registrant.Age = *form.Age
	}
	if form.Weight != nil {
		registrant.Weight = *form.Weight
	}
	if form.Height != nil {
		registrant.Height = *form.Height
	}
	if form.UrgencyLevel != nil {
		registrant.UrgencyLevel = *form.UrgencyLevel
	}
	return registrant
}
