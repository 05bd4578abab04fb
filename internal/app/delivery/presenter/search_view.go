package presenter

import (
	"errors"
	"fmt"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/exceptions"
	"strconv"
	"strings"
)

const (
	StatusLoading = "loading"
	StatusSuccess = "success"
	StatusError   = "error"
)

var SlotLabels = []string{
	"Full Name",
	"Age",
	"Gender",
	"Blood Type",
	"Organ(s)",
	"Weight",
	"Height",
}

type Slot struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type PatientSummary struct {
	MedicalID  string `json:"medical_id"`
	OrganCount int    `json:"organ_count"`
	Status     string `json:"status"`
	BMI        string `json:"bmi"`
}

// SearchView is the status line plus seven labelled slots of a search panel.
// Slots are empty whenever the status is not success.
type SearchView struct {
	Role    models.Role     `json:"role"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Slots   []Slot          `json:"slots"`
	Summary *PatientSummary `json:"summary,omitempty"`
}

func NewSearchView(role models.Role) *SearchView {
	view := &SearchView{
		Role:    role,
		Status:  StatusLoading,
		Message: fmt.Sprintf(constvars.SearchLoadingFormat, strings.ToLower(role.Label())),
	}
	view.Clear()
	return view
}

func (v *SearchView) Show(registrant *models.Registrant) {
	v.Status = StatusSuccess
	v.Message = fmt.Sprintf(constvars.SearchFoundFormat, v.Role.Label())
	v.Slots = []Slot{
		{Label: SlotLabels[0], Value: registrant.FullName},
		{Label: SlotLabels[1], Value: strconv.Itoa(registrant.Age) + " years"},
		{Label: SlotLabels[2], Value: registrant.Gender},
		{Label: SlotLabels[3], Value: registrant.BloodType},
		{Label: SlotLabels[4], Value: strings.Join(registrant.Organs, ", ")},
		{Label: SlotLabels[5], Value: strconv.Itoa(registrant.Weight) + " kg"},
		{Label: SlotLabels[6], Value: strconv.Itoa(registrant.Height) + " cm"},
	}

	v.Summary = nil
	if v.Role == models.RolePatient {
		v.Summary = &PatientSummary{
			MedicalID:  registrant.MedicalID,
			OrganCount: len(registrant.Organs),
			Status:     constvars.SearchAwaitingMatch,
			BMI:        strconv.FormatFloat(registrant.BMI(), 'f', 1, 64),
		}
	}
}

// Fail clears the panel. Validation and not-found messages are shown as they are;
// anything else is prefixed with "<Role> search failed".
func (v *SearchView) Fail(err error) {
	v.Clear()
	v.Status = StatusError

	message := err.Error()
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		message = customErr.ClientMessage
		if customErr.Kind == exceptions.KindValidation || customErr.Kind == exceptions.KindNotFound {
			v.Message = message
			return
		}
	}
	v.Message = fmt.Sprintf(constvars.SearchFailedFormat, v.Role.Label(), message)
}

func (v *SearchView) Clear() {
	v.Slots = make([]Slot, len(SlotLabels))
	for i, label := range SlotLabels {
		v.Slots[i] = Slot{Label: label}
	}
	v.Summary = nil
}
