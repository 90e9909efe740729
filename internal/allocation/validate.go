package allocation

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// swagger:enum ViolationKind
type ViolationKind string

const (
	DuplicateState       ViolationKind = "DUPLICATE_STATE"
	PercentageExceeded   ViolationKind = "PERCENTAGE_EXCEEDED"
	OutOfRangePercentage ViolationKind = "OUT_OF_RANGE_PERCENTAGE"
)

// ErrRejected is wrapped by every Rejection so that callers can check for
// validation failures with errors.Is without caring about the kind.
var ErrRejected = errors.New("the allocation was rejected")

// Rejection is returned by Validate when a candidate cannot be accepted.
type Rejection struct {
	Kind ViolationKind

	// States contains the codes of the states the candidate conflicts with.
	// It is empty for OutOfRangePercentage.
	States []string

	// Combined is the percentage the overlapping allocations would add up to,
	// rounded to one decimal. For OutOfRangePercentage, it is the percentage
	// of the candidate. It is zero for DuplicateState.
	Combined decimal.Decimal
}

func (r *Rejection) Error() string {
	switch r.Kind {
	case OutOfRangePercentage:
		return fmt.Sprintf("the percentage of an allocation must be larger than 0 and at most %s, but is %s", MaxPercentage, r.Combined)
	case DuplicateState:
		return fmt.Sprintf("there already is an allocation for %s in an overlapping date range", strings.Join(r.States, ", "))
	case PercentageExceeded:
		return fmt.Sprintf("together with the allocations for %s, the combined percentage would be %s%%, which is more than %s%%", strings.Join(r.States, ", "), r.Combined.StringFixed(1), MaxPercentage)
	}

	return ErrRejected.Error()
}

func (r *Rejection) Unwrap() error {
	return ErrRejected
}

// Validate checks if the candidate can be added to the existing allocations
// of an employee. It returns nil if the candidate is accepted and a
// *Rejection otherwise.
//
// Validate never modifies its arguments. The order of existing does not
// matter for the verdict.
func Validate(existing []WorkAllocation, candidate WorkAllocation) error {
	if !candidate.Percentage.IsPositive() || candidate.Percentage.GreaterThan(MaxPercentage) {
		return &Rejection{
			Kind:     OutOfRangePercentage,
			Combined: candidate.Percentage,
		}
	}

	overlapping := Overlapping(existing, candidate.Range())

	// A state can only be allocated once per day, no matter how
	// small the percentages are
	for _, a := range overlapping {
		if a.StateCode == candidate.StateCode {
			return &Rejection{
				Kind:   DuplicateState,
				States: []string{candidate.StateCode},
			}
		}
	}

	sum := candidate.Percentage
	states := make([]string, 0, len(overlapping))
	for _, a := range overlapping {
		sum = sum.Add(a.Percentage)
		states = append(states, a.StateCode)
	}

	if sum.GreaterThan(MaxPercentage.Add(Tolerance)) {
		slices.Sort(states)

		return &Rejection{
			Kind:     PercentageExceeded,
			States:   slices.Compact(states),
			Combined: sum.Round(1),
		}
	}

	return nil
}

// ValidateAll validates a batch of candidates in order. Each candidate is
// validated against the existing allocations and all candidates accepted
// before it.
//
// The returned slice has one entry per candidate, nil for accepted ones.
func ValidateAll(existing []WorkAllocation, candidates []WorkAllocation) []error {
	accepted := slices.Clone(existing)
	verdicts := make([]error, 0, len(candidates))

	for _, c := range candidates {
		err := Validate(accepted, c)
		if err == nil {
			accepted = append(accepted, c)
		}
		verdicts = append(verdicts, err)
	}

	return verdicts
}
