package models

import (
	"strings"

	"github.com/payroll-zero/backend/internal/jurisdiction"
	"gorm.io/gorm"
)

// Employee is a person whose work can be allocated to states.
type Employee struct {
	DefaultModel
	Name      string `gorm:"uniqueIndex"`
	Note      string
	HomeState string // State of residence, may be empty
}

func (e *Employee) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)
	e.HomeState = jurisdiction.Normalize(e.HomeState)

	if e.Name == "" {
		return ErrEmployeeNameEmpty
	}

	return nil
}
