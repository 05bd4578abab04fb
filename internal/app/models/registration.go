package models

// RegistrationResult is the commit receipt of a contract write.
type RegistrationResult struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
	GasLimit    uint64 `json:"gas_limit"`
}

type WorkflowState string

const (
	StateIdle              WorkflowState = "Idle"
	StateValidating        WorkflowState = "Validating"
	StateCheckingDuplicate WorkflowState = "CheckingDuplicate"
	StateSubmitting        WorkflowState = "Submitting"
	StateConfirming        WorkflowState = "Confirming"
	StateDone              WorkflowState = "Done"
	StateError             WorkflowState = "Error"
)

// RegistrationOutcome records where a registration ended and the path it took.
type RegistrationOutcome struct {
	Role        Role
	MedicalID   string
	State       WorkflowState
	Transitions []WorkflowState
	Result      *RegistrationResult
}

func (o *RegistrationOutcome) Transition(to WorkflowState) WorkflowState {
	from := o.State
	o.State = to
	o.Transitions = append(o.Transitions, to)
	return from
}
