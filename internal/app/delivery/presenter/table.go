// Package presenter turns registry results into what a page or terminal shows:
// table rows for listings and a labelled detail panel for searches.
package presenter

import (
	"lifeledger-service/internal/app/models"
	"strconv"
	"strings"
)

var TableHeader = []string{
	"Index",
	"Full Name",
	"Age",
	"Gender",
	"Medical ID",
	"Blood Type",
	"Organ(s)",
	"Weight(kg)",
	"Height(cm)",
}

type RowWriter interface {
	WriteHeader(cells []string) error
	WriteRow(cells []string) error
}

// TablePresenter writes the header exactly once, immediately before the first row.
// An empty listing produces no output at all.
type TablePresenter struct {
	out           RowWriter
	headerWritten bool
	rows          int
}

func NewTablePresenter(out RowWriter) *TablePresenter {
	return &TablePresenter{out: out}
}

// Visit matches contracts.VisitFunc so it can be handed straight to ListAll.
func (p *TablePresenter) Visit(index int, registrant *models.Registrant) error {
	if !p.headerWritten {
		if err := p.out.WriteHeader(TableHeader); err != nil {
			return err
		}
		p.headerWritten = true
	}
	if err := p.out.WriteRow(Row(index, registrant)); err != nil {
		return err
	}
	p.rows++
	return nil
}

func (p *TablePresenter) Rows() int {
	return p.rows
}

// Row renders one registrant; index is zero-based and shown one-based.
func Row(index int, registrant *models.Registrant) []string {
	return []string{
		strconv.Itoa(index + 1),
		registrant.FullName,
		strconv.Itoa(registrant.Age),
		registrant.Gender,
		registrant.MedicalID,
		registrant.BloodType,
		strings.Join(registrant.Organs, ", "),
		strconv.Itoa(registrant.Weight),
		strconv.Itoa(registrant.Height),
	}
}
