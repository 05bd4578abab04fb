package responses

type Registration struct {
	MedicalID   string `json:"medical_id"`
	Role        string `json:"role"`
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	GasLimit    uint64 `json:"gas_limit"`
	State       string `json:"state"`
}

type MedicalID struct {
	Role      string `json:"role"`
	MedicalID string `json:"medical_id"`
}

type RegistryStats struct {
	Donors   uint64 `json:"donors"`
	Patients uint64 `json:"patients"`
}

const (
	ListLineHeader = "header"
	ListLineRow    = "row"
	ListLineError  = "error"
)

// ListLine is one NDJSON line of a streamed registry listing.
type ListLine struct {
	Type     string   `json:"type"`
	Index    int      `json:"index,omitempty"`
	Cells    []string `json:"cells,omitempty"`
	Error    string   `json:"error,omitempty"`
	Rendered int      `json:"rendered,omitempty"`
}
