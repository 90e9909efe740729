package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/payroll-zero/backend/internal/models"
	"github.com/shopspring/decimal"
)

type EmployeeEditable struct {
	Name      string `json:"name" example:"Jane Doe"`                         // Name of the employee, must be unique
	Note      string `json:"note" example:"Commutes twice a week" default:""` // A note about the employee
	HomeState string `json:"homeState" example:"PA" default:""`               // The state the employee lives in
}

// model returns the database resource for the API representation of the editable fields
func (editable EmployeeEditable) model() models.Employee {
	return models.Employee{
		Name:      editable.Name,
		Note:      editable.Note,
		HomeState: editable.HomeState,
	}
}

type EmployeeLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/employees/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                   // The employee itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?employee=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // Work allocations of the employee
	Coverage    string `json:"coverage" example:"https://example.com/api/v1/employees/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/coverage"`      // Allocated percentage for a day. Needs the date query parameter
}

type Employee struct {
	models.DefaultModel
	EmployeeEditable
	Links EmployeeLinks `json:"links"`
}

// newEmployee returns the API v1 representation of the resource
func newEmployee(c *gin.Context, model models.Employee) Employee {
	url := c.GetString(string(models.DBContextURL))

	return Employee{
		DefaultModel: model.DefaultModel,
		EmployeeEditable: EmployeeEditable{
			Name:      model.Name,
			Note:      model.Note,
			HomeState: model.HomeState,
		},
		Links: EmployeeLinks{
			Self:        fmt.Sprintf("%s/v1/employees/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?employee=%s", url, model.ID),
			Coverage:    fmt.Sprintf("%s/v1/employees/%s/coverage", url, model.ID),
		},
	}
}

type EmployeeListResponse struct {
	Data       []Employee  `json:"data"`                                                          // List of employees
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EmployeeCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []EmployeeResponse `json:"data"`                                                          // List of created employees
}

func (e *EmployeeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, EmployeeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EmployeeResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Employee `json:"data"`                                                          // Data for the employee
}

type EmployeeQueryFilter struct {
	Name      string `form:"name" filterField:"false"`   // By name
	Note      string `form:"note" filterField:"false"`   // By note
	HomeState string `form:"homeState"`                  // By home state
	Search    string `form:"search" filterField:"false"` // By string in name or note
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first employee returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of employees to return. Defaults to 50.
}

func (f EmployeeQueryFilter) model() models.Employee {
	// Name and Note are not set since they are
	// handled in the controller function
	return EmployeeEditable{
		HomeState: f.HomeState,
	}.model()
}

type Coverage struct {
	Date        string          `json:"date" example:"2024-06-30"` // The day
	Percentage  decimal.Decimal `json:"percentage" example:"100"`  // Sum of the percentages of all allocations active on the day
	Allocations []Allocation    `json:"allocations"`               // The allocations active on the day
}

type CoverageResponse struct {
	Error *string   `json:"error" example:"the date query parameter must be set"` // The error, if any occurred
	Data  *Coverage `json:"data"`                                                 // Coverage for the day
}
