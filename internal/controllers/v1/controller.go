// Package v1 implements the HTTP API for employees, their work allocations
// and the jurisdictions work can be allocated to.
package v1

import (
	"github.com/payroll-zero/backend/internal/jurisdiction"
)

// Controller holds the data that handlers need besides the database.
type Controller struct {
	Jurisdictions jurisdiction.Table
}

// validState reports if the code is empty or a known state code.
func (co Controller) validState(code string) bool {
	return code == "" || co.Jurisdictions.Valid(jurisdiction.Normalize(code))
}
