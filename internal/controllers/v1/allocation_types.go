package v1

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/payroll-zero/backend/internal/jurisdiction"
	"github.com/payroll-zero/backend/internal/models"
	"github.com/payroll-zero/backend/internal/types"
	pz_uuid "github.com/payroll-zero/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type AllocationEditable struct {
	EmployeeID    uuid.UUID       `json:"employeeId" example:"7fd1d5c1-7bc8-4bb3-a4e4-79e6fd5c8bd1"`          // ID of the employee the work is allocated for
	StateCode     string          `json:"stateCode" example:"NJ"`                                             // Two letter code of the state
	Percentage    decimal.Decimal `json:"percentage" example:"60" minimum:"0.00000001" maximum:"100"`         // Share of the work, larger than 0 and at most 100
	EffectiveDate types.Date      `json:"effectiveDate" swaggertype:"primitive,string" example:"2024-01-01"`  // First day of the allocation
	EndDate       *types.Date     `json:"endDate" swaggertype:"primitive,string" example:"2024-12-31"`        // Last day of the allocation. null if the allocation does not end
	IsPrimary     bool            `json:"isPrimary" example:"true" default:"false"`                           // The state is the primary work location of the employee
	Notes         string          `json:"notes" example:"Office in Newark, Mondays to Wednesdays" default:""` // Notes about the allocation
}

// model returns the database resource for the API representation of the editable fields
func (editable AllocationEditable) model() models.WorkAllocation {
	// An empty end date from a form means the allocation does not end
	endDate := editable.EndDate
	if endDate != nil && endDate.IsZero() {
		endDate = nil
	}

	return models.WorkAllocation{
		EmployeeID:    editable.EmployeeID,
		StateCode:     jurisdiction.Normalize(editable.StateCode),
		Percentage:    editable.Percentage,
		EffectiveDate: editable.EffectiveDate,
		EndDate:       endDate,
		IsPrimary:     editable.IsPrimary,
		Notes:         strings.TrimSpace(editable.Notes),
	}
}

// AllocationPatch contains the fields of an allocation that can be updated.
// All other fields are fixed once the allocation is created.
type AllocationPatch struct {
	IsPrimary bool   `json:"isPrimary" example:"false"`      // The state is the primary work location of the employee
	Notes     string `json:"notes" example:"Back in office"` // Notes about the allocation
}

func (patch AllocationPatch) model() models.WorkAllocation {
	return models.WorkAllocation{
		IsPrimary: patch.IsPrimary,
		Notes:     strings.TrimSpace(patch.Notes),
	}
}

type AllocationLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/allocations/0c2f8e5d-7bd8-4c5b-9a0f-1b1f5a4b7a0e"`   // The allocation itself
	Employee     string `json:"employee" example:"https://example.com/api/v1/employees/7fd1d5c1-7bc8-4bb3-a4e4-79e6fd5c8bd1"` // The employee the allocation belongs to
	Jurisdiction string `json:"jurisdiction" example:"https://example.com/api/v1/jurisdictions/NJ"`                           // The state the work is allocated to
}

type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Links AllocationLinks `json:"links"`
}

// newAllocation returns the API v1 representation of the resource
func newAllocation(c *gin.Context, model models.WorkAllocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			EmployeeID:    model.EmployeeID,
			StateCode:     model.StateCode,
			Percentage:    model.Percentage,
			EffectiveDate: model.EffectiveDate,
			EndDate:       model.EndDate,
			IsPrimary:     model.IsPrimary,
			Notes:         model.Notes,
		},
		Links: AllocationLinks{
			Self:         fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Employee:     fmt.Sprintf("%s/v1/employees/%s", url, model.EmployeeID),
			Jurisdiction: fmt.Sprintf("%s/v1/jurisdictions/%s", url, model.StateCode),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of allocations
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                                          // List of created allocations
}

func (a *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Error *string     `json:"error" example:"there already is an allocation for NJ in an overlapping date range"` // The error, if any occurred
	Data  *Allocation `json:"data"`                                                                               // Data for the allocation
}

type AllocationQueryFilter struct {
	EmployeeID pz_uuid.UUID `form:"employee"`                     // By ID of the employee
	StateCode  string       `form:"stateCode"`                    // By state code
	IsPrimary  bool         `form:"isPrimary"`                    // Is the primary allocation
	ActiveOn   string       `form:"activeOn" filterField:"false"` // Active on the day, in YYYY-MM-DD format
	Offset     uint         `form:"offset" filterField:"false"`   // The offset of the first allocation returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`    // Maximum number of allocations to return. Defaults to 50.
}

func (f AllocationQueryFilter) model() models.WorkAllocation {
	return models.WorkAllocation{
		EmployeeID: f.EmployeeID.UUID,
		StateCode:  f.StateCode,
		IsPrimary:  f.IsPrimary,
	}
}
