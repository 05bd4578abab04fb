package routers

import (
	"bufio"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/app/contracts/mocks"
	"lifeledger-service/internal/app/delivery/http/controllers"
	"lifeledger-service/internal/app/delivery/http/middlewares"
	"lifeledger-service/internal/app/delivery/presenter"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/app/services/core/notification"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/dto/responses"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRouter struct {
	router       *chi.Mux
	sender       *mocks.EmailSender
	registration *mocks.RegistrationUsecase
	registry     *mocks.RegistryUsecase
	contract     *mocks.RegistryContract
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App:      config.App{Version: "1.0.0", MaxRequests: 1000, Timezone: "UTC"},
		Contract: config.AppContract{Driver: constvars.ContractDriverLedger, Network: "localhost"},
		Mailer:   config.AppMailer{Driver: constvars.MailerDriverSMTP, SenderName: "LifeLedger Platform"},
		RateLimit: config.AppRateLimit{
			EmailRequests:          100,
			EmailPerSeconds:        60,
			EmailBlockTimeInSecond: 300,
		},
	}
	driverConfig := &config.DriverConfig{SMTP: config.SMTP{Host: "smtp.test", Username: "noreply@lifeledger.test"}}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	tr := &testRouter{
		router:       chi.NewRouter(),
		sender:       new(mocks.EmailSender),
		registration: new(mocks.RegistrationUsecase),
		registry:     new(mocks.RegistryUsecase),
		contract:     new(mocks.RegistryContract),
	}
	tr.sender.On("Driver").Return(constvars.MailerDriverSMTP).Maybe()
	tr.contract.On("Address").Return("0x5FbDB2315678afecb367f032d93F642f64180aa3").Maybe()

	notificationUsecase := notification.NewNotificationUsecase(logger, internalConfig, driverConfig, tr.sender, nil, nil, m)

	ctrls := &Controllers{
		Notification: controllers.NewNotificationController(logger, notificationUsecase, 0),
		Registration: controllers.NewRegistrationController(logger, tr.registration, tr.contract),
		Registry:     controllers.NewRegistryController(logger, tr.registry, tr.contract, 0),
		System:       controllers.NewSystemController(logger, internalConfig, notificationUsecase, tr.registry, tr.contract, AvailableRoutes, 0),
	}
	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		Metrics:        m,
	}

	SetupRoutes(tr.router, internalConfig, middlewareInstance, ctrls, registry)
	return tr
}

func (tr *testRouter) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	tr.router.ServeHTTP(rr, req)
	return rr
}

func decodeRelay(t *testing.T, rr *httptest.ResponseRecorder) responses.RelayResponse {
	t.Helper()
	var body responses.RelayResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func donorEmailRequest() *requests.SendEmail {
	return &requests.SendEmail{
		Email: "ada@example.com",
		Type:  "donor",
		Data: &requests.NotificationData{
			FullName:  "Ada Lovelace",
			MedicalID: "DON-ADA-1234",
			BloodType: "O+",
			Organs:    "Kidney, Liver",
		},
	}
}

func TestSendEmailRoute(t *testing.T) {
	t.Run("Missing field", func(t *testing.T) {
		tr := newTestRouter(t)
		request := donorEmailRequest()
		request.Email = ""

		rr := tr.do(http.MethodPost, "/api/send-email", request)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeRelay(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, "Missing required fields", body.Error)
		tr.sender.AssertNotCalled(t, "SendHTMLEmail", mock.Anything, mock.Anything)
	})

	t.Run("Malformed body reports missing fields", func(t *testing.T) {
		tr := newTestRouter(t)

		rr := tr.do(http.MethodPost, "/api/send-email", "{not json")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Missing required fields", decodeRelay(t, rr).Error)
	})

	t.Run("Invalid type", func(t *testing.T) {
		tr := newTestRouter(t)
		request := donorEmailRequest()
		request.Type = "pledge"

		rr := tr.do(http.MethodPost, "/api/send-email", request)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid email type", decodeRelay(t, rr).Error)
	})

	t.Run("Send failure surfaces the reason", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sender.On("SendHTMLEmail", mock.Anything, mock.Anything).
			Return(exceptions.ErrSMTPSendEmail(errors.New("dial tcp: connection refused"), "smtp.test"))

		rr := tr.do(http.MethodPost, "/api/send-email", donorEmailRequest())

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		body := decodeRelay(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, "dial tcp: connection refused", body.Error)
	})

	t.Run("Success", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.sender.On("SendHTMLEmail", mock.Anything, mock.Anything).Return(nil).Once()

		rr := tr.do(http.MethodPost, "/api/send-email", donorEmailRequest())

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeRelay(t, rr)
		assert.True(t, body.Success)
		assert.Equal(t, "Email sent successfully", body.Message)
		tr.sender.AssertExpectations(t)
	})
}

func TestUnknownRoute(t *testing.T) {
	tr := newTestRouter(t)

	rr := tr.do(http.MethodGet, "/api/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var body responses.RouteNotFound
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Route not found", body.Error)
	assert.Equal(t, "/api/unknown", body.RequestedPath)
	assert.Equal(t, AvailableRoutes, body.AvailableRoutes)
}

func TestAvailableRoutesMatchRouter(t *testing.T) {
	tr := newTestRouter(t)

	var walked []string
	err := chi.Walk(tr.router, func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		walked = append(walked, method+" "+strings.TrimSuffix(route, "/"))
		return nil
	})
	require.NoError(t, err)

	for _, route := range AvailableRoutes {
		assert.Contains(t, walked, route)
	}
}

func TestHealthAndStatus(t *testing.T) {
	tr := newTestRouter(t)

	rr := tr.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var health responses.Health
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "1.0.0", health.Version)
	assert.Equal(t, constvars.HealthEmailConfigured, health.Email)
	assert.Equal(t, constvars.HealthBlockchainReady, health.Blockchain)
	assert.NotEmpty(t, health.Timestamp)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))

	rr = tr.do(http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var status responses.Status
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, "LifeLedger", status.Platform)
	assert.Equal(t, constvars.ContractDriverLedger, status.Blockchain)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", status.ContractAddress)
	assert.Equal(t, constvars.HealthServiceActive, status.EmailService)
	assert.GreaterOrEqual(t, status.Uptime, 0.0)
}

func TestRegisterRoute(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		tr := newTestRouter(t)
		outcome := &models.RegistrationOutcome{
			Role:      models.RoleDonor,
			MedicalID: "DON-ADA-1234",
			State:     models.StateDone,
			Result:    &models.RegistrationResult{TxHash: "0xabc", BlockNumber: 7, GasLimit: 1000000},
		}
		tr.registration.On("Register", mock.Anything, mock.Anything, mock.MatchedBy(func(form *requests.RegistrationForm) bool {
			return form.Role == "donor" && form.FullName == "Ada Lovelace" && form.MedicalID == "DON-ADA-1234"
		})).Return(outcome, nil).Once()

		rr := tr.do(http.MethodPost, "/api/donors", map[string]interface{}{
			"fullname":  "  Ada Lovelace ",
			"age":       30,
			"gender":    "F",
			"medicalId": "DON-ADA-1234",
			"organs":    []string{"Kidney"},
			"weight":    60,
			"height":    170,
		})

		assert.Equal(t, http.StatusCreated, rr.Code)
		var body struct {
			Success bool                   `json:"success"`
			Message string                 `json:"message"`
			Data    responses.Registration `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Registration Successful!", body.Message)
		assert.Equal(t, "0xabc", body.Data.TxHash)
		assert.Equal(t, uint64(1000000), body.Data.GasLimit)
		assert.Equal(t, "Done", body.Data.State)
		tr.registration.AssertExpectations(t)
	})

	t.Run("Duplicate maps to conflict", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.registration.On("Register", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrDuplicateMedicalID(nil)).Once()

		rr := tr.do(http.MethodPost, "/api/patients", map[string]interface{}{"fullname": "Ada"})

		assert.Equal(t, http.StatusConflict, rr.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Medical ID already exists!", body.ClientMessage)
		assert.Equal(t, exceptions.KindDuplicate, body.Kind)
	})

	t.Run("Pledge route registers pledges", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.registration.On("Register", mock.Anything, mock.Anything, mock.MatchedBy(func(form *requests.RegistrationForm) bool {
			return form.Role == "pledge"
		})).Return(&models.RegistrationOutcome{Role: models.RolePledge, State: models.StateDone}, nil).Once()

		rr := tr.do(http.MethodPost, "/api/pledges", map[string]interface{}{"fullname": "Ada"})

		assert.Equal(t, http.StatusCreated, rr.Code)
		tr.registration.AssertExpectations(t)
	})

	t.Run("Malformed body", func(t *testing.T) {
		tr := newTestRouter(t)

		rr := tr.do(http.MethodPost, "/api/donors", "{")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		tr.registration.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})
}

func testRegistrant(id string) *models.Registrant {
	return &models.Registrant{
		Role:      models.RolePatient,
		FullName:  "Grace Hopper",
		Age:       40,
		Gender:    "F",
		MedicalID: id,
		BloodType: "A-",
		Organs:    []string{"Heart"},
		Weight:    80,
		Height:    200,
	}
}

func TestSearchRoute(t *testing.T) {
	t.Run("Found patient", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.registry.On("Search", mock.Anything, mock.Anything, models.RolePatient, "PAT-GRH-4321").
			Return(testRegistrant("PAT-GRH-4321"), nil).Once()

		rr := tr.do(http.MethodGet, "/api/patients/PAT-GRH-4321", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Success bool                 `json:"success"`
			Data    presenter.SearchView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, presenter.StatusSuccess, body.Data.Status)
		assert.Equal(t, "Patient found successfully!", body.Data.Message)
		require.Len(t, body.Data.Slots, 7)
		assert.Equal(t, "40 years", body.Data.Slots[1].Value)
		require.NotNil(t, body.Data.Summary)
		assert.Equal(t, "20.0", body.Data.Summary.BMI)
	})

	t.Run("Not found clears the panel", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.registry.On("Search", mock.Anything, mock.Anything, models.RoleDonor, "DON-XXX-0000").
			Return(nil, exceptions.ErrRegistrantNotFound("Donor", "DON-XXX-0000")).Once()

		rr := tr.do(http.MethodGet, "/api/donors/DON-XXX-0000", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var body struct {
			Success bool                 `json:"success"`
			Message string               `json:"message"`
			Data    presenter.SearchView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Donor not found. Please check the Medical ID.", body.Message)
		assert.Equal(t, presenter.StatusError, body.Data.Status)
		for _, slot := range body.Data.Slots {
			assert.Empty(t, slot.Value)
		}
	})
}

func readLines(t *testing.T, rr *httptest.ResponseRecorder) []responses.ListLine {
	t.Helper()
	var lines []responses.ListLine
	scanner := bufio.NewScanner(rr.Body)
	for scanner.Scan() {
		var line responses.ListLine
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestListRoute(t *testing.T) {
	t.Run("Streams header then rows", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.registry.On("ListAll", mock.Anything, mock.Anything, models.RolePatient, mock.Anything).
			Return([]*models.Registrant{testRegistrant("PAT-A-1111"), testRegistrant("PAT-B-2222")}, nil).Once()

		rr := tr.do(http.MethodGet, "/api/patients", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.MIMEApplicationNDJSON, rr.Header().Get(constvars.HeaderContentType))
		lines := readLines(t, rr)
		require.Len(t, lines, 3)
		assert.Equal(t, responses.ListLineHeader, lines[0].Type)
		assert.Equal(t, presenter.TableHeader, lines[0].Cells)
		assert.Equal(t, responses.ListLineRow, lines[1].Type)
		assert.Equal(t, "1", lines[1].Cells[0])
		assert.Equal(t, "PAT-B-2222", lines[2].Cells[4])
	})

	t.Run("Abort keeps rendered rows and ends with an error line", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.registry.On("ListAll", mock.Anything, mock.Anything, models.RoleDonor, mock.Anything).
			Return([]*models.Registrant{testRegistrant("DON-A-1111")}, exceptions.ErrContractCall(errors.New("rpc down"), "getDonor")).Once()

		rr := tr.do(http.MethodGet, "/api/donors", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		lines := readLines(t, rr)
		require.Len(t, lines, 3)
		assert.Equal(t, responses.ListLineRow, lines[1].Type)
		assert.Equal(t, responses.ListLineError, lines[2].Type)
		assert.Equal(t, 1, lines[2].Rendered)
		assert.NotEmpty(t, lines[2].Error)
	})

	t.Run("Failure before any record is a plain error", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.registry.On("ListAll", mock.Anything, mock.Anything, models.RoleDonor, mock.Anything).
			Return(nil, exceptions.ErrWalletNotConnected(nil)).Once()

		rr := tr.do(http.MethodGet, "/api/donors", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Blockchain not connected. Please connect wallet first.", body.ClientMessage)
	})

	t.Run("Empty registry writes nothing", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.registry.On("ListAll", mock.Anything, mock.Anything, models.RolePatient, mock.Anything).
			Return([]*models.Registrant{}, nil).Once()

		rr := tr.do(http.MethodGet, "/api/patients", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestStatsAndMedicalIDRoutes(t *testing.T) {
	tr := newTestRouter(t)
	tr.registry.On("Stats", mock.Anything, mock.Anything).
		Return(&responses.RegistryStats{Donors: 3, Patients: 2}, nil).Once()

	rr := tr.do(http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats struct {
		Data responses.RegistryStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, uint64(3), stats.Data.Donors)
	assert.Equal(t, uint64(2), stats.Data.Patients)

	rr = tr.do(http.MethodGet, "/api/medical-ids?role=pledge&name=Ada%20Lovelace", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var generated struct {
		Data responses.MedicalID `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &generated))
	assert.Regexp(t, `^PLD-ADA-\d{4}$`, generated.Data.MedicalID)

	rr = tr.do(http.MethodGet, "/api/medical-ids?role=doctor&name=Ada", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMetricsRoute(t *testing.T) {
	tr := newTestRouter(t)
	tr.do(http.MethodGet, "/api/health", nil)

	rr := tr.do(http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "lifeledger_endpoint_latency_seconds")
}
