package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/payroll-zero/backend/internal/controllers/v1"
	"github.com/payroll-zero/backend/internal/models"
	"github.com/payroll-zero/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T, e v1.EmployeeEditable, expectedStatus ...int) v1.EmployeeResponse {
	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.EmployeeEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/employees", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var employee v1.EmployeeCreateResponse
	test.DecodeResponse(t, &r, &employee)

	if r.Code == http.StatusCreated {
		return employee.Data[0]
	}

	return v1.EmployeeResponse{}
}

// TestEmployeesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestEmployeesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestEmployee(t, v1.EmployeeEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/employees", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.EmployeeListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestEmployeesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestEmployeesOptions() {
	tests := []struct {
		name   string
		path   string
		status int    // Expected HTTP status code
		allow  string // Expected allow header
	}{
		{"No Employee with this ID", uuid.New().String(), http.StatusNotFound, ""},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Employee exists", createTestEmployee(suite.T(), v1.EmployeeEditable{}).Data.ID.String(), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Coverage", fmt.Sprintf("%s/coverage", createTestEmployee(suite.T(), v1.EmployeeEditable{}).Data.ID), http.StatusNoContent, "OPTIONS, GET"},
		{"Coverage, no Employee with this ID", fmt.Sprintf("%s/coverage", uuid.New()), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/employees", tt.path)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

// TestEmployeesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestEmployeesGetSingle() {
	e := createTestEmployee(suite.T(), v1.EmployeeEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Employee", e.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Employee with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/employees/%s", tt.id), "")

			var employee v1.EmployeeResponse
			test.DecodeResponse(t, &r, &employee)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestEmployeesLinks() {
	e := createTestEmployee(suite.T(), v1.EmployeeEditable{Name: "Links"})

	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/employees/%s", e.Data.ID), e.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/allocations?employee=%s", e.Data.ID), e.Data.Links.Allocations)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/employees/%s/coverage", e.Data.ID), e.Data.Links.Coverage)
}

func (suite *TestSuiteStandard) TestEmployeesGetFilter() {
	_ = createTestEmployee(suite.T(), v1.EmployeeEditable{
		Name:      "Jane Doe",
		Note:      "Commutes from Philadelphia",
		HomeState: "PA",
	})

	_ = createTestEmployee(suite.T(), v1.EmployeeEditable{
		Name:      "John Doe",
		Note:      "Fully remote",
		HomeState: "nj",
	})

	_ = createTestEmployee(suite.T(), v1.EmployeeEditable{
		Name: "Max Mustermann",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Home state PA", "homeState=PA", 1},
		{"Home state lower case", "homeState=nj", 1},
		{"Home state not set", "homeState=", 1},
		{"Empty Note", "note=", 1},
		{"Fuzzy name", "name=Doe", 2},
		{"Fuzzy note", "note=remote", 1},
		{"Search for 'DOE'", "search=DOE", 2},
		{"Search for 'phila'", "search=phila", 1},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.EmployeeListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/employees?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
			assert.Equal(t, tt.len, re.Pagination.Count)
		})
	}
}

// TestEmployeesGetSorted verifies that employees are sorted by name.
func (suite *TestSuiteStandard) TestEmployeesGetSorted() {
	e1 := createTestEmployee(suite.T(), v1.EmployeeEditable{Name: "Alphabetically first"})
	e2 := createTestEmployee(suite.T(), v1.EmployeeEditable{Name: "Zulu"})
	e3 := createTestEmployee(suite.T(), v1.EmployeeEditable{Name: "Mike"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/employees", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var employees v1.EmployeeListResponse
	test.DecodeResponse(suite.T(), &r, &employees)

	require.Len(suite.T(), employees.Data, 3)
	assert.Equal(suite.T(), e1.Data.Name, employees.Data[0].Name)
	assert.Equal(suite.T(), e3.Data.Name, employees.Data[1].Name)
	assert.Equal(suite.T(), e2.Data.Name, employees.Data[2].Name)
	assert.Equal(suite.T(), int64(3), employees.Pagination.Total)
}

func (suite *TestSuiteStandard) TestEmployeesCreateFails() {
	e := createTestEmployee(suite.T(), v1.EmployeeEditable{Name: "Unique"})

	tests := []struct {
		name     string
		body     any
		status   int                                             // expected HTTP status
		testFunc func(t *testing.T, e v1.EmployeeCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, e v1.EmployeeCreateResponse) {
				assert.Contains(t, *e.Error, "cannot unmarshal number into Go struct field")
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, e v1.EmployeeCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *e.Error)
			},
		},
		{
			"No name", `[{ "note": "Some text" }]`, http.StatusBadRequest,
			func(t *testing.T, e v1.EmployeeCreateResponse) {
				assert.Equal(t, models.ErrEmployeeNameEmpty.Error(), *e.Data[0].Error)
			},
		},
		{
			"Duplicate name", []v1.EmployeeEditable{{Name: e.Data.Name}}, http.StatusBadRequest,
			func(t *testing.T, e v1.EmployeeCreateResponse) {
				assert.Equal(t, models.ErrEmployeeNameNotUnique.Error(), *e.Data[0].Error)
			},
		},
		{
			"Unknown home state", []v1.EmployeeEditable{{Name: "Somewhere", HomeState: "XY"}}, http.StatusBadRequest,
			func(t *testing.T, e v1.EmployeeCreateResponse) {
				assert.Equal(t, "the state code is not a known US state or the District of Columbia", *e.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/employees", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var e v1.EmployeeCreateResponse
			test.DecodeResponse(t, &r, &e)

			if tt.testFunc != nil {
				tt.testFunc(t, e)
			}
		})
	}
}

// TestEmployeesCreatePartial verifies that valid employees are created even
// if others in the same request fail.
func (suite *TestSuiteStandard) TestEmployeesCreatePartial() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/employees", []v1.EmployeeEditable{
		{Name: "Valid"},
		{Name: "Invalid", HomeState: "XX"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.EmployeeCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Valid", response.Data[0].Data.Name)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

// Verify that updating employees works as desired
func (suite *TestSuiteStandard) TestEmployeesUpdate() {
	employee := createTestEmployee(suite.T(), v1.EmployeeEditable{Name: "Name of the employee", HomeState: "PA"})

	tests := []struct {
		name     string                                    // name of the test
		employee map[string]any                            // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, e v1.EmployeeResponse) // tests to perform against the updated employee resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "  Another name ",
				"note": "New note!",
			},
			func(t *testing.T, e v1.EmployeeResponse) {
				assert.Equal(t, "New note!", e.Data.Note)
				assert.Equal(t, "Another name", e.Data.Name)
				assert.Equal(t, "PA", e.Data.HomeState, "Home state must not change when not set")
			},
		},
		{
			"Home state",
			map[string]any{
				"homeState": "de",
			},
			func(t *testing.T, e v1.EmployeeResponse) {
				assert.Equal(t, "DE", e.Data.HomeState)
			},
		},
		{
			"Remove home state",
			map[string]any{
				"homeState": "",
			},
			func(t *testing.T, e v1.EmployeeResponse) {
				assert.Equal(t, "", e.Data.HomeState)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, employee.Data.Links.Self, tt.employee)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var e v1.EmployeeResponse
			test.DecodeResponse(t, &r, &e)

			if tt.testFunc != nil {
				tt.testFunc(t, e)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestEmployeesUpdateFails() {
	other := createTestEmployee(suite.T(), v1.EmployeeEditable{Name: "Taken"})

	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Empty name", "", `{"name": "  "}`, http.StatusBadRequest},
		{"Name taken", "", fmt.Sprintf(`{"name": "%s"}`, other.Data.Name), http.StatusBadRequest},
		{"Unknown home state", "", `{"homeState": "XX"}`, http.StatusBadRequest},
		{"Non-existing Employee", uuid.New().String(), `{"name": "2"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			if tt.id == "" {
				tt.id = createTestEmployee(t, v1.EmployeeEditable{}).Data.ID.String()
			}

			recorder := test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/employees/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestEmployeesDelete verifies all cases for employee deletions.
func (suite *TestSuiteStandard) TestEmployeesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Employee", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			if tt.id == "" {
				tt.id = createTestEmployee(t, v1.EmployeeEditable{}).Data.ID.String()
			}

			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/employees/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestEmployeesDeleteCascades verifies that the allocations of an employee
// are deleted with the employee.
func (suite *TestSuiteStandard) TestEmployeesDeleteCascades() {
	e := createTestEmployee(suite.T(), v1.EmployeeEditable{})
	a := createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEmployeesCoverage() {
	e := createTestEmployee(suite.T(), v1.EmployeeEditable{})
	end := date("2024-06-30")

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e.Data.ID, StateCode: "CA", Percentage: decimal.NewFromInt(60), EffectiveDate: date("2024-01-01"), EndDate: &end})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e.Data.ID, StateCode: "NY", Percentage: decimal.NewFromInt(40), EffectiveDate: date("2024-01-01")})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e.Data.ID, StateCode: "NJ", Percentage: decimal.NewFromFloat(33.5), EffectiveDate: date("2024-07-01")})

	tests := []struct {
		date       string
		percentage string
		states     []string
	}{
		{"2023-12-31", "0", []string{}},
		{"2024-01-01", "100", []string{"CA", "NY"}},
		{"2024-06-30", "100", []string{"CA", "NY"}},
		{"2024-07-01", "73.5", []string{"NY", "NJ"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.date, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s?date=%s", e.Data.Links.Coverage, tt.date), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var coverage v1.CoverageResponse
			test.DecodeResponse(t, &r, &coverage)

			assert.Equal(t, tt.date, coverage.Data.Date)
			assert.True(t, decimal.RequireFromString(tt.percentage).Equal(coverage.Data.Percentage), "coverage is %s, expected %s", coverage.Data.Percentage, tt.percentage)

			states := make([]string, 0)
			for _, a := range coverage.Data.Allocations {
				states = append(states, a.StateCode)
			}
			assert.Equal(t, tt.states, states)
		})
	}
}

func (suite *TestSuiteStandard) TestEmployeesCoverageFails() {
	e := createTestEmployee(suite.T(), v1.EmployeeEditable{})

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"No date", e.Data.Links.Coverage, http.StatusBadRequest},
		{"Broken date", fmt.Sprintf("%s?date=2024-13-01", e.Data.Links.Coverage), http.StatusBadRequest},
		{"No employee", fmt.Sprintf("http://example.com/v1/employees/%s/coverage?date=2024-01-01", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
