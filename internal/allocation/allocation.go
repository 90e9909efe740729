// Package allocation decides whether a work allocation can be added to the
// set of allocations an employee already has.
//
// An employee can split their work between several states. For every day,
// the percentages of all allocations covering that day must not add up to
// more than 100, and a state must not be allocated twice for the same day.
//
// Everything in this package operates on values only. It does not read from
// or write to any store, callers persist accepted allocations themselves.
package allocation

import (
	"github.com/payroll-zero/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	// MaxPercentage is the largest percentage a single allocation, and the
	// sum of overlapping allocations, can have.
	MaxPercentage = decimal.NewFromInt(100)

	// Tolerance is added to MaxPercentage when checking sums. Clients send
	// splits like 33.33 + 33.33 + 33.34, which must be accepted even if they
	// were rounded differently on the way.
	Tolerance = decimal.RequireFromString("0.01")
)

// WorkAllocation attributes a percentage of an employee's work to a state
// for a date range.
type WorkAllocation struct {
	StateCode     string
	Percentage    decimal.Decimal
	EffectiveDate types.Date
	EndDate       *types.Date // nil means the allocation does not end
	IsPrimary     bool
	Notes         string
}

// Range returns the inclusive date range the allocation is active in.
func (a WorkAllocation) Range() Range {
	return Range{
		Start: a.EffectiveDate,
		End:   types.OrOpenEnd(a.EndDate),
	}
}

// Range is an inclusive range of days.
type Range struct {
	Start types.Date
	End   types.Date
}

// Contains reports if the day is part of the range.
func (r Range) Contains(day types.Date) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

// Overlaps reports whether two ranges share at least one day.
//
// Both ends are inclusive, a range ending on the day another one starts
// overlaps it.
func Overlaps(a, b Range) bool {
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}

// Overlapping returns all allocations whose range overlaps r.
// The order of the input is kept.
func Overlapping(existing []WorkAllocation, r Range) []WorkAllocation {
	var overlapping []WorkAllocation
	for _, a := range existing {
		if Overlaps(a.Range(), r) {
			overlapping = append(overlapping, a)
		}
	}
	return overlapping
}

// ActiveOn returns all allocations that are active on the given day.
func ActiveOn(existing []WorkAllocation, day types.Date) []WorkAllocation {
	var active []WorkAllocation
	for _, a := range existing {
		if a.Range().Contains(day) {
			active = append(active, a)
		}
	}
	return active
}

// CoverageAt returns the sum of the percentages of all allocations active on
// the given day.
func CoverageAt(existing []WorkAllocation, day types.Date) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range ActiveOn(existing, day) {
		sum = sum.Add(a.Percentage)
	}
	return sum
}
