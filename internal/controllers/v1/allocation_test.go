package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/payroll-zero/backend/internal/controllers/v1"
	"github.com/payroll-zero/backend/internal/models"
	"github.com/payroll-zero/backend/internal/types"
	"github.com/payroll-zero/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// date parses a YYYY-MM-DD string and panics if that is not possible.
func date(s string) types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func createTestAllocation(t *testing.T, a v1.AllocationEditable, expectedStatus ...int) v1.AllocationResponse {
	if a.EmployeeID == uuid.Nil {
		a.EmployeeID = createTestEmployee(t, v1.EmployeeEditable{}).Data.ID
	}

	if a.StateCode == "" {
		a.StateCode = "CA"
	}

	if a.Percentage.IsZero() {
		a.Percentage = decimal.NewFromInt(50)
	}

	if a.EffectiveDate.IsZero() {
		a.EffectiveDate = date("2024-01-01")
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.AllocationEditable{a}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/allocations", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var allocation v1.AllocationCreateResponse
	test.DecodeResponse(t, &r, &allocation)

	if r.Code == http.StatusCreated {
		return allocation.Data[0]
	}

	if len(allocation.Data) == 1 {
		return allocation.Data[0]
	}

	return v1.AllocationResponse{Error: allocation.Error}
}

// TestAllocationsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestAllocationsDBClosed() {
	e := createTestEmployee(suite.T(), v1.EmployeeEditable{})
	suite.CloseDB()

	a := createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e.Data.ID}, http.StatusInternalServerError)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *a.Error)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestAllocationsOptions() {
	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"No Allocation with this ID", uuid.New().String(), http.StatusNotFound, ""},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Allocation exists", createTestAllocation(suite.T(), v1.AllocationEditable{}).Data.ID.String(), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/allocations/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetSingle() {
	a := createTestAllocation(suite.T(), v1.AllocationEditable{StateCode: "nj", Notes: "  Newark office "})

	r := test.Request(suite.T(), http.MethodGet, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var allocation v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &allocation)

	assert.Equal(suite.T(), "NJ", allocation.Data.StateCode)
	assert.Equal(suite.T(), "Newark office", allocation.Data.Notes)
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(allocation.Data.Percentage))
	assert.Equal(suite.T(), "2024-01-01", allocation.Data.EffectiveDate.String())
	assert.Nil(suite.T(), allocation.Data.EndDate)
	assert.Equal(suite.T(), "http://example.com/v1/jurisdictions/NJ", allocation.Data.Links.Jurisdiction)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/employees/%s", allocation.Data.EmployeeID), allocation.Data.Links.Employee)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No Allocation with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID (positive number)", "23", http.StatusBadRequest},
		{"Invalid ID (string)", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestAllocationsCreateEmptyEndDate verifies that forms sending an empty
// string for the end date create open ended allocations.
func (suite *TestSuiteStandard) TestAllocationsCreateEmptyEndDate() {
	e := createTestEmployee(suite.T(), v1.EmployeeEditable{})

	body := fmt.Sprintf(`[{"employeeId":"%s","stateCode":"CA","percentage":50,"effectiveDate":"2024-01-01","endDate":""}]`, e.Data.ID)
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.AllocationCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)
	assert.Nil(suite.T(), response.Data[0].Data.EndDate)
}

// TestAllocationsCreateScenarios verifies the verdicts for allocations
// created one after the other for the same employee.
func (suite *TestSuiteStandard) TestAllocationsCreateScenarios() {
	end := func(s string) *types.Date {
		d := date(s)
		return &d
	}

	tests := []struct {
		name     string
		existing []v1.AllocationEditable
		create   v1.AllocationEditable
		status   int
		err      string
	}{
		{
			"Sum of exactly 100",
			[]v1.AllocationEditable{{StateCode: "CA", Percentage: decimal.NewFromInt(60), EffectiveDate: date("2024-01-01"), EndDate: end("2024-12-31")}},
			v1.AllocationEditable{StateCode: "NY", Percentage: decimal.NewFromInt(40), EffectiveDate: date("2024-01-01"), EndDate: end("2024-12-31")},
			http.StatusCreated,
			"",
		},
		{
			"Sum exceeded with open ends",
			[]v1.AllocationEditable{{StateCode: "CA", Percentage: decimal.NewFromInt(60), EffectiveDate: date("2024-01-01")}},
			v1.AllocationEditable{StateCode: "NY", Percentage: decimal.NewFromInt(50), EffectiveDate: date("2024-06-01")},
			http.StatusBadRequest,
			"together with the allocations for CA, the combined percentage would be 110.0%, which is more than 100%",
		},
		{
			"Same state in disjoint ranges",
			[]v1.AllocationEditable{{StateCode: "CA", Percentage: decimal.NewFromInt(50), EffectiveDate: date("2024-01-01"), EndDate: end("2024-06-30")}},
			v1.AllocationEditable{StateCode: "CA", Percentage: decimal.NewFromInt(30), EffectiveDate: date("2024-07-01"), EndDate: end("2024-12-31")},
			http.StatusCreated,
			"",
		},
		{
			"Same state on a shared boundary day",
			[]v1.AllocationEditable{{StateCode: "CA", Percentage: decimal.NewFromInt(50), EffectiveDate: date("2024-01-01"), EndDate: end("2024-06-30")}},
			v1.AllocationEditable{StateCode: "CA", Percentage: decimal.NewFromInt(30), EffectiveDate: date("2024-06-30"), EndDate: end("2024-12-31")},
			http.StatusBadRequest,
			"there already is an allocation for CA in an overlapping date range",
		},
		{
			"Percentage out of range",
			nil,
			v1.AllocationEditable{StateCode: "TX", Percentage: decimal.NewFromInt(150), EffectiveDate: date("2024-01-01")},
			http.StatusBadRequest,
			"the percentage of an allocation must be larger than 0 and at most 100, but is 150",
		},
		{
			"Negative percentage",
			nil,
			v1.AllocationEditable{StateCode: "TX", Percentage: decimal.NewFromInt(-5), EffectiveDate: date("2024-01-01")},
			http.StatusBadRequest,
			"the percentage of an allocation must be larger than 0 and at most 100, but is -5",
		},
		{
			"Rounded thirds",
			[]v1.AllocationEditable{
				{StateCode: "CA", Percentage: decimal.RequireFromString("33.33"), EffectiveDate: date("2024-01-01")},
				{StateCode: "NY", Percentage: decimal.RequireFromString("33.33"), EffectiveDate: date("2024-01-01")},
			},
			v1.AllocationEditable{StateCode: "NJ", Percentage: decimal.RequireFromString("33.35"), EffectiveDate: date("2024-01-01")},
			http.StatusCreated,
			"",
		},
		{
			"Empty end date is open ended",
			[]v1.AllocationEditable{{StateCode: "CA", Percentage: decimal.NewFromInt(60), EffectiveDate: date("2024-01-01"), EndDate: &types.Date{}}},
			v1.AllocationEditable{StateCode: "NY", Percentage: decimal.NewFromInt(50), EffectiveDate: date("2030-01-01"), EndDate: &types.Date{}},
			http.StatusBadRequest,
			"together with the allocations for CA, the combined percentage would be 110.0%, which is more than 100%",
		},
		{
			"End before effective date",
			nil,
			v1.AllocationEditable{StateCode: "CA", Percentage: decimal.NewFromInt(10), EffectiveDate: date("2024-06-01"), EndDate: end("2024-05-31")},
			http.StatusBadRequest,
			models.ErrAllocationEndBeforeStart.Error(),
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			employee := createTestEmployee(t, v1.EmployeeEditable{})

			for _, e := range tt.existing {
				e.EmployeeID = employee.Data.ID
				_ = createTestAllocation(t, e)
			}

			tt.create.EmployeeID = employee.Data.ID
			a := createTestAllocation(t, tt.create, tt.status)

			if tt.err != "" {
				require.NotNil(t, a.Error)
				assert.Equal(t, tt.err, *a.Error)
				return
			}

			assert.Nil(t, a.Error)
			assert.Equal(t, tt.create.StateCode, a.Data.StateCode)
		})
	}
}

// TestAllocationsCreateBatch verifies that allocations in the same request
// are validated against the ones created before them.
func (suite *TestSuiteStandard) TestAllocationsCreateBatch() {
	employee := createTestEmployee(suite.T(), v1.EmployeeEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", []v1.AllocationEditable{
		{EmployeeID: employee.Data.ID, StateCode: "CA", Percentage: decimal.NewFromInt(70), EffectiveDate: date("2024-01-01")},
		{EmployeeID: employee.Data.ID, StateCode: "NY", Percentage: decimal.NewFromInt(40), EffectiveDate: date("2024-03-01")},
		{EmployeeID: employee.Data.ID, StateCode: "NJ", Percentage: decimal.NewFromInt(30), EffectiveDate: date("2024-03-01")},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AllocationCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "CA", response.Data[0].Data.StateCode)
	require.NotNil(suite.T(), response.Data[1].Error)
	assert.Equal(suite.T(), "together with the allocations for CA, the combined percentage would be 110.0%, which is more than 100%", *response.Data[1].Error)
	assert.Equal(suite.T(), "NJ", response.Data[2].Data.StateCode)

	r = test.Request(suite.T(), http.MethodGet, employee.Data.Links.Allocations, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 2)
}

func (suite *TestSuiteStandard) TestAllocationsCreateFails() {
	employee := createTestEmployee(suite.T(), v1.EmployeeEditable{})

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"No body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `[{ "stateCode": 2 }]`, http.StatusBadRequest, ""},
		{"No employee", []v1.AllocationEditable{{StateCode: "CA", Percentage: decimal.NewFromInt(10), EffectiveDate: date("2024-01-01")}}, http.StatusBadRequest, "the employeeId must be set"},
		{"Employee does not exist", []v1.AllocationEditable{{EmployeeID: uuid.New(), StateCode: "CA", Percentage: decimal.NewFromInt(10), EffectiveDate: date("2024-01-01")}}, http.StatusNotFound, "there is no employee matching your query"},
		{"No state", []v1.AllocationEditable{{EmployeeID: uuid.New(), Percentage: decimal.NewFromInt(10), EffectiveDate: date("2024-01-01")}}, http.StatusBadRequest, "the state code is not a known US state or the District of Columbia"},
		{"Unknown state", []v1.AllocationEditable{{EmployeeID: uuid.New(), StateCode: "PR", Percentage: decimal.NewFromInt(10), EffectiveDate: date("2024-01-01")}}, http.StatusBadRequest, "the state code is not a known US state or the District of Columbia"},
		{"No effective date", fmt.Sprintf(`[{ "employeeId": "%s", "stateCode": "CA", "percentage": "10" }]`, employee.Data.ID), http.StatusBadRequest, models.ErrAllocationEffectiveDateMissing.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/allocations", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AllocationCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.err == "" {
				return
			}

			if response.Error != nil {
				assert.Equal(t, tt.err, *response.Error)
				return
			}

			require.Len(t, response.Data, 1)
			require.NotNil(t, response.Data[0].Error)
			assert.Equal(t, tt.err, *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetFilter() {
	e1 := createTestEmployee(suite.T(), v1.EmployeeEditable{})
	e2 := createTestEmployee(suite.T(), v1.EmployeeEditable{})
	end := date("2024-06-30")

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e1.Data.ID, StateCode: "CA", Percentage: decimal.NewFromInt(60), EffectiveDate: date("2024-01-01"), EndDate: &end, IsPrimary: true})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e1.Data.ID, StateCode: "NY", Percentage: decimal.NewFromInt(40), EffectiveDate: date("2024-01-01")})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e2.Data.ID, StateCode: "NY", Percentage: decimal.NewFromInt(100), EffectiveDate: date("2024-07-01"), IsPrimary: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Employee 1", fmt.Sprintf("employee=%s", e1.Data.ID), 2},
		{"Employee 2", fmt.Sprintf("employee=%s", e2.Data.ID), 1},
		{"Unknown employee", fmt.Sprintf("employee=%s", uuid.New()), 0},
		{"State", "stateCode=NY", 2},
		{"State lower case", "stateCode=ca", 1},
		{"Primary", "isPrimary=true", 2},
		{"Not primary", "isPrimary=false", 1},
		{"Active before all", "activeOn=2023-12-31", 0},
		{"Active on end date", "activeOn=2024-06-30", 2},
		{"Active after end date", "activeOn=2024-07-01", 2},
		{"Active, employee 1", fmt.Sprintf("activeOn=2024-07-01&employee=%s", e1.Data.ID), 1},
		{"Limit 1", "limit=1", 1},
		{"Offset 1", "offset=1", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.AllocationListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetFilterFails() {
	tests := []struct {
		name  string
		query string
	}{
		{"Broken employee ID", "employee=NotAUUID"},
		{"Broken activeOn", "activeOn=July"},
		{"Broken isPrimary", "isPrimary=maybe"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsUpdate() {
	a := createTestAllocation(suite.T(), v1.AllocationEditable{Notes: "Before"})

	tests := []struct {
		name     string
		body     map[string]any
		testFunc func(t *testing.T, a v1.AllocationResponse)
	}{
		{
			"Notes",
			map[string]any{"notes": " After "},
			func(t *testing.T, a v1.AllocationResponse) {
				assert.Equal(t, "After", a.Data.Notes)
				assert.False(t, a.Data.IsPrimary)
			},
		},
		{
			"Primary flag",
			map[string]any{"isPrimary": true},
			func(t *testing.T, a v1.AllocationResponse) {
				assert.True(t, a.Data.IsPrimary)
				assert.Equal(t, "After", a.Data.Notes)
			},
		},
		{
			"Fixed fields are ignored",
			map[string]any{"stateCode": "NY", "percentage": "10"},
			func(t *testing.T, a v1.AllocationResponse) {
				assert.Equal(t, "CA", a.Data.StateCode)
				assert.True(t, decimal.NewFromInt(50).Equal(a.Data.Percentage))
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, a.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var updated v1.AllocationResponse
			test.DecodeResponse(t, &r, &updated)
			tt.testFunc(t, updated)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsUpdateFails() {
	a := createTestAllocation(suite.T(), v1.AllocationEditable{})

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Broken JSON", a.Data.Links.Self, `{ "notes": 2" }`, http.StatusBadRequest},
		{"Invalid type", a.Data.Links.Self, `{ "notes": 2 }`, http.StatusBadRequest},
		{"Non-existing allocation", fmt.Sprintf("http://example.com/v1/allocations/%s", uuid.New()), `{ "notes": "x" }`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestAllocationsDelete verifies that deleting an allocation frees its
// share for new allocations.
func (suite *TestSuiteStandard) TestAllocationsDelete() {
	e := createTestEmployee(suite.T(), v1.EmployeeEditable{})
	a := createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e.Data.ID, Percentage: decimal.NewFromInt(100)})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e.Data.ID, StateCode: "NV", Percentage: decimal.NewFromInt(10)}, http.StatusBadRequest)

	r := test.Request(suite.T(), http.MethodDelete, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EmployeeID: e.Data.ID, StateCode: "NV", Percentage: decimal.NewFromInt(10)})
}
