package contracts

// Session is the contract handle and identity a workflow runs against.
// It is passed explicitly to every registration and registry call.
type Session struct {
	ID       string
	Contract RegistryContract
}

func (s *Session) Identity() string {
	if s == nil || s.Contract == nil {
		return ""
	}
	return s.Contract.Identity()
}

func (s *Session) IsConnected() bool {
	return s != nil && s.Contract != nil
}
