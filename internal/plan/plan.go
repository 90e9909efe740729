// Package plan reads allocation plans from YAML or JSON files and checks
// them without a database.
//
// A plan lists the allocations of one employee in the order they would be
// added. Each entry is validated against all entries accepted before it.
package plan

import (
	"errors"
	"fmt"
	"io"

	"github.com/payroll-zero/backend/internal/allocation"
	"github.com/payroll-zero/backend/internal/jurisdiction"
	"github.com/payroll-zero/backend/internal/types"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmpty           = errors.New("the plan does not contain any allocations")
	ErrUnknownState    = errors.New("the state code is not a known US state or the District of Columbia")
	ErrInvalidDate     = errors.New("dates must be in YYYY-MM-DD format")
	ErrEndBeforeStart  = errors.New("the end date must not be before the effective date")
	ErrInvalidDecimal  = errors.New("the percentage is not a decimal number")
	ErrEffectiveNotSet = errors.New("the effective date must be set")
)

// Plan is the content of a plan file.
type Plan struct {
	Employee    string  `yaml:"employee"`
	Allocations []Entry `yaml:"allocations"`
}

// Entry is a single allocation in a plan file. Percentages and dates are
// kept as written so that errors can point at the original values.
type Entry struct {
	State      string `yaml:"state"`
	Percentage string `yaml:"percentage"`
	Effective  string `yaml:"effective"`
	End        string `yaml:"end"`
	Primary    bool   `yaml:"primary"`
	Notes      string `yaml:"notes"`
}

// Result is the verdict for one entry of a plan.
type Result struct {
	Entry Entry
	Err   error // nil if the entry is accepted
}

// Accepted reports if the entry can be added.
func (r Result) Accepted() bool {
	return r.Err == nil
}

// Load decodes a plan. JSON is a subset of YAML, so both formats are read.
func Load(r io.Reader) (Plan, error) {
	var p Plan

	err := yaml.NewDecoder(r).Decode(&p)
	if errors.Is(err, io.EOF) {
		return Plan{}, ErrEmpty
	}
	if err != nil {
		return Plan{}, fmt.Errorf("could not parse plan: %w", err)
	}

	if len(p.Allocations) == 0 {
		return Plan{}, ErrEmpty
	}

	return p, nil
}

// allocation converts the entry into the value the validator works on.
func (e Entry) allocation(table jurisdiction.Table) (allocation.WorkAllocation, error) {
	code := jurisdiction.Normalize(e.State)
	if !table.Valid(code) {
		return allocation.WorkAllocation{}, fmt.Errorf("%w: %q", ErrUnknownState, e.State)
	}

	percentage, err := decimal.NewFromString(e.Percentage)
	if err != nil {
		return allocation.WorkAllocation{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, e.Percentage)
	}

	if e.Effective == "" {
		return allocation.WorkAllocation{}, ErrEffectiveNotSet
	}

	effective, err := types.ParseDate(e.Effective)
	if err != nil {
		return allocation.WorkAllocation{}, fmt.Errorf("%w: %q", ErrInvalidDate, e.Effective)
	}

	a := allocation.WorkAllocation{
		StateCode:     code,
		Percentage:    percentage,
		EffectiveDate: effective,
		IsPrimary:     e.Primary,
		Notes:         e.Notes,
	}

	if e.End != "" {
		end, err := types.ParseDate(e.End)
		if err != nil {
			return allocation.WorkAllocation{}, fmt.Errorf("%w: %q", ErrInvalidDate, e.End)
		}

		if end.Before(effective) {
			return allocation.WorkAllocation{}, ErrEndBeforeStart
		}
		a.EndDate = &end
	}

	return a, nil
}

// Check validates all entries of the plan in order. Entries that cannot be
// converted are rejected and not part of the set later entries are
// validated against.
func Check(table jurisdiction.Table, p Plan) []Result {
	results := make([]Result, len(p.Allocations))

	var candidates []allocation.WorkAllocation
	var positions []int

	for i, e := range p.Allocations {
		results[i].Entry = e

		a, err := e.allocation(table)
		if err != nil {
			results[i].Err = err
			continue
		}

		candidates = append(candidates, a)
		positions = append(positions, i)
	}

	for i, err := range allocation.ValidateAll(nil, candidates) {
		results[positions[i]].Err = err
	}

	return results
}
