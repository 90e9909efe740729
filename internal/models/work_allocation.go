package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/payroll-zero/backend/internal/allocation"
	"github.com/payroll-zero/backend/internal/jurisdiction"
	"github.com/payroll-zero/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WorkAllocation is the persisted form of allocation.WorkAllocation.
//
// Allocations are never changed in place except for their notes and the
// primary flag. To change anything else, the allocation is deleted and
// a new one is created.
type WorkAllocation struct {
	DefaultModel
	Employee      Employee  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	EmployeeID    uuid.UUID `gorm:"index"`
	StateCode     string
	Percentage    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	EffectiveDate types.Date
	EndDate       *types.Date
	IsPrimary     bool
	Notes         string
}

// Allocation returns the value the validator works on.
func (w WorkAllocation) Allocation() allocation.WorkAllocation {
	return allocation.WorkAllocation{
		StateCode:     w.StateCode,
		Percentage:    w.Percentage,
		EffectiveDate: w.EffectiveDate,
		EndDate:       w.EndDate,
		IsPrimary:     w.IsPrimary,
		Notes:         w.Notes,
	}
}

// Allocations converts a list of persisted allocations for the validator.
func Allocations(persisted []WorkAllocation) []allocation.WorkAllocation {
	values := make([]allocation.WorkAllocation, 0, len(persisted))
	for _, w := range persisted {
		values = append(values, w.Allocation())
	}
	return values
}

// AllocationsForEmployee returns all allocations of an employee ordered by
// their effective date.
func AllocationsForEmployee(tx *gorm.DB, employeeID uuid.UUID) ([]WorkAllocation, error) {
	var existing []WorkAllocation
	err := tx.
		Where("employee_id = ?", employeeID).
		Order("date(effective_date) ASC, state_code ASC").
		Find(&existing).Error

	return existing, err
}

func (w *WorkAllocation) BeforeSave(_ *gorm.DB) error {
	w.StateCode = jurisdiction.Normalize(w.StateCode)
	w.Notes = strings.TrimSpace(w.Notes)

	return nil
}

// Check verifies the allocation and validates it against all other
// allocations of the employee, as read through tx.
func (w WorkAllocation) Check(tx *gorm.DB) error {
	if w.EffectiveDate.IsZero() {
		return ErrAllocationEffectiveDateMissing
	}

	if w.EndDate != nil && w.EndDate.Before(w.EffectiveDate) {
		return ErrAllocationEndBeforeStart
	}

	err := tx.First(&Employee{}, "id = ?", w.EmployeeID).Error
	if err != nil {
		return err
	}

	existing, err := AllocationsForEmployee(tx, w.EmployeeID)
	if err != nil {
		return err
	}

	return allocation.Validate(Allocations(existing), w.Allocation())
}

// BeforeCreate runs Check in the transaction of the insert, so the
// snapshot the validation works on is the one the allocation is written to.
func (w *WorkAllocation) BeforeCreate(tx *gorm.DB) error {
	_ = w.DefaultModel.BeforeCreate(tx)

	return w.Check(tx)
}

func (w *WorkAllocation) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("EmployeeID", "StateCode", "Percentage", "EffectiveDate", "EndDate") {
		return ErrAllocationImmutable
	}

	return nil
}
