// Package jurisdiction contains the static data about US states that
// multi-state payroll needs: valid codes, states without a wage income tax
// and reciprocity agreements between states.
//
// The data is held in a Table value that is passed to whoever needs it.
package jurisdiction

import (
	"slices"
	"strings"

	"github.com/ryanuber/go-glob"
)

// State is a jurisdiction work can be allocated to.
type State struct {
	Code        string   `json:"code" example:"NJ"`           // Two letter postal code
	Name        string   `json:"name" example:"New Jersey"`   // Full name
	NoIncomeTax bool     `json:"noIncomeTax" example:"false"` // The state does not tax wage income
	Reciprocity []string `json:"reciprocity" example:"PA"`    // States with a reciprocity agreement
}

// Table holds the jurisdiction data.
type Table struct {
	states      map[string]State
	codes       []string
	reciprocity map[string][]string
}

// New builds a Table from a list of states and a list of reciprocity
// agreements. Each agreement is a pair of state codes and is symmetric.
func New(states []State, agreements [][2]string) Table {
	t := Table{
		states:      make(map[string]State, len(states)),
		codes:       make([]string, 0, len(states)),
		reciprocity: make(map[string][]string),
	}

	for _, s := range states {
		t.states[s.Code] = s
		t.codes = append(t.codes, s.Code)
	}
	slices.Sort(t.codes)

	for _, a := range agreements {
		t.reciprocity[a[0]] = append(t.reciprocity[a[0]], a[1])
		t.reciprocity[a[1]] = append(t.reciprocity[a[1]], a[0])
	}

	for code := range t.reciprocity {
		slices.Sort(t.reciprocity[code])
		t.reciprocity[code] = slices.Compact(t.reciprocity[code])
	}

	return t
}

// Normalize returns the canonical form of a state code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports if the code identifies a known state.
func (t Table) Valid(code string) bool {
	_, ok := t.states[code]
	return ok
}

// Get returns the state with the code, including its reciprocity partners.
func (t Table) Get(code string) (State, bool) {
	s, ok := t.states[code]
	if !ok {
		return State{}, false
	}

	s.Reciprocity = t.Partners(code)
	return s, true
}

// Name returns the full name of the state, or the empty string for
// unknown codes.
func (t Table) Name(code string) string {
	return t.states[code].Name
}

// NoIncomeTax reports if the state does not tax wage income.
func (t Table) NoIncomeTax(code string) bool {
	return t.states[code].NoIncomeTax
}

// Partners returns the codes of all states that have a reciprocity agreement
// with the state.
func (t Table) Partners(code string) []string {
	partners := slices.Clone(t.reciprocity[code])
	if partners == nil {
		return []string{}
	}
	return partners
}

// Reciprocal reports if the two states have a reciprocity agreement.
func (t Table) Reciprocal(a, b string) bool {
	return slices.Contains(t.reciprocity[a], b)
}

// Match returns all states whose code matches the glob pattern. An empty
// pattern matches all states.
func (t Table) Match(pattern string) []State {
	pattern = Normalize(pattern)
	if pattern == "" {
		pattern = "*"
	}

	states := make([]State, 0)
	for _, code := range t.codes {
		if glob.Glob(pattern, code) {
			s, _ := t.Get(code)
			states = append(states, s)
		}
	}

	return states
}
