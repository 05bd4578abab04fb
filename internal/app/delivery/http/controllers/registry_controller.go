package controllers

import (
	"context"
	"errors"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/delivery/presenter"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/responses"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RegistryController struct {
	Log             *zap.Logger
	RegistryUsecase contracts.RegistryUsecase
	Contract        contracts.RegistryContract
	Timeout         time.Duration
}

func NewRegistryController(logger *zap.Logger, registryUsecase contracts.RegistryUsecase, contract contracts.RegistryContract, timeout time.Duration) *RegistryController {
	return &RegistryController{
		Log:             logger,
		RegistryUsecase: registryUsecase,
		Contract:        contract,
		Timeout:         timeout,
	}
}

// Search answers with the search panel in both outcomes; on failure the panel is
// cleared and the status line carries the reason.
func (ctrl *RegistryController) Search(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medicalID := chi.URLParam(r, constvars.URLParamMedicalID)

		ctx, cancel := requestContext(r, ctrl.Timeout)
		defer cancel()

		view := presenter.NewSearchView(role)
		registrant, err := ctrl.RegistryUsecase.Search(ctx, newSession(ctx, ctrl.Contract), role, medicalID)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				err = exceptions.ErrServerDeadlineExceeded(err)
			}
			view.Fail(err)
			utils.BuildFailureResponse(ctrl.Log, w, err, view.Message, view)
			return
		}

		view.Show(registrant)
		utils.BuildSuccessResponse(w, constvars.StatusOK, view.Message, view)
	}
}

// List streams the registry as NDJSON, one line per record, flushed as each record
// arrives. Failures before the first record get a normal error response; later
// failures end the stream with an error line and keep what was already sent.
func (ctrl *RegistryController) List(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrStreamingUnsupported())
			return
		}

		ctx := r.Context()
		out := &ndjsonRowWriter{w: w, flusher: flusher}
		table := presenter.NewTablePresenter(out)

		_, err := ctrl.RegistryUsecase.ListAll(ctx, newSession(ctx, ctrl.Contract), role, table.Visit)
		if err != nil {
			if !out.started {
				utils.BuildErrorResponse(ctrl.Log, w, err)
				return
			}
			ctrl.Log.Warn("RegistryController.List stream aborted",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingRoleKey, string(role)),
				zap.Int(constvars.LoggingRowsRenderedKey, table.Rows()),
				zap.Error(err),
			)
			out.writeLine(&responses.ListLine{
				Type:     responses.ListLineError,
				Error:    clientMessageOf(err),
				Rendered: table.Rows(),
			})
		}
	}
}

// ndjsonRowWriter adapts the table presenter to a chunked HTTP response.
type ndjsonRowWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	started bool
	rows    int
}

func (nw *ndjsonRowWriter) WriteHeader(cells []string) error {
	return nw.writeLine(&responses.ListLine{Type: responses.ListLineHeader, Cells: cells})
}

func (nw *ndjsonRowWriter) WriteRow(cells []string) error {
	nw.rows++
	return nw.writeLine(&responses.ListLine{Type: responses.ListLineRow, Index: nw.rows, Cells: cells})
}

func (nw *ndjsonRowWriter) writeLine(line *responses.ListLine) error {
	if !nw.started {
		nw.w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationNDJSON)
		nw.w.Header().Set(constvars.HeaderCacheControl, "no-cache")
		nw.w.Header().Set(constvars.HeaderXContentTypeO, "nosniff")
		nw.w.WriteHeader(constvars.StatusOK)
		nw.started = true
	}
	if err := json.NewEncoder(nw.w).Encode(line); err != nil {
		return err
	}
	nw.flusher.Flush()
	return nil
}

func clientMessageOf(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
