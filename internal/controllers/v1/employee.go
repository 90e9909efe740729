package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/payroll-zero/backend/internal/allocation"
	"github.com/payroll-zero/backend/internal/httputil"
	"github.com/payroll-zero/backend/internal/jurisdiction"
	"github.com/payroll-zero/backend/internal/models"
	"github.com/payroll-zero/backend/internal/types"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterEmployeeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsEmployees)
		r.GET("", GetEmployees)
		r.POST("", co.CreateEmployees)
	}
	{
		r.OPTIONS("/:id", OptionsEmployeeDetail)
		r.GET("/:id", GetEmployee)
		r.PATCH("/:id", co.UpdateEmployee)
		r.DELETE("/:id", DeleteEmployee)
	}
	{
		r.OPTIONS("/:id/coverage", OptionsEmployeeCoverage)
		r.GET("/:id/coverage", GetEmployeeCoverage)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Employees
// @Success		204
// @Router			/v1/employees [options]
func OptionsEmployees(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Employees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/employees/{id} [options]
func OptionsEmployeeDetail(c *gin.Context) {
	_, ok := findEmployee(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Employees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/employees/{id}/coverage [options]
func OptionsEmployeeCoverage(c *gin.Context) {
	_, ok := findEmployee(c)
	if !ok {
		return
	}

	httputil.OptionsGet(c)
}

// findEmployee binds the ID from the URI and fetches the employee.
// If that fails, it writes the error response and returns false.
func findEmployee(c *gin.Context) (models.Employee, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Employee{}, false
	}

	var employee models.Employee
	err = models.DB.First(&employee, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Employee{}, false
	}

	return employee, true
}

// @Summary		Create employees
// @Description	Creates new employees
// @Tags			Employees
// @Produce		json
// @Success		201			{object}	EmployeeCreateResponse
// @Failure		400			{object}	EmployeeCreateResponse
// @Failure		500			{object}	EmployeeCreateResponse
// @Param			employees	body		[]EmployeeEditable	true	"Employees"
// @Router			/v1/employees [post]
func (co Controller) CreateEmployees(c *gin.Context) {
	var editables []EmployeeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := EmployeeCreateResponse{}

	for _, create := range editables {
		if !co.validState(create.HomeState) {
			status = r.appendError(errUnknownState, status)
			continue
		}

		employee := create.model()
		err = models.DB.Create(&employee).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newEmployee(c, employee)
		r.Data = append(r.Data, EmployeeResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get employees
// @Description	Returns a list of employees
// @Tags			Employees
// @Produce		json
// @Success		200	{object}	EmployeeListResponse
// @Failure		400	{object}	EmployeeListResponse
// @Failure		500	{object}	EmployeeListResponse
// @Router			/v1/employees [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			homeState	query	string	false	"Filter by home state"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first employee returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of employees to return. Defaults to 50."
func GetEmployees(c *gin.Context) {
	var filter EmployeeQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EmployeeListResponse{
			Error: &s,
		})
		return
	}

	filter.HomeState = jurisdiction.Normalize(filter.HomeState)
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	limit := limit(setFields, filter.Limit)
	q = q.Offset(int(filter.Offset)).Limit(limit)

	var employees []models.Employee
	err := q.Find(&employees).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Employee, 0, len(employees))
	for _, employee := range employees {
		data = append(data, newEmployee(c, employee))
	}

	c.JSON(http.StatusOK, EmployeeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get employee
// @Description	Returns a specific employee
// @Tags			Employees
// @Produce		json
// @Success		200	{object}	EmployeeResponse
// @Failure		400	{object}	EmployeeResponse
// @Failure		404	{object}	EmployeeResponse
// @Failure		500	{object}	EmployeeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/employees/{id} [get]
func GetEmployee(c *gin.Context) {
	employee, ok := findEmployee(c)
	if !ok {
		return
	}

	apiResource := newEmployee(c, employee)
	c.JSON(http.StatusOK, EmployeeResponse{Data: &apiResource})
}

// @Summary		Update employee
// @Description	Updates an existing employee. Only values to be updated need to be specified.
// @Tags			Employees
// @Accept			json
// @Produce		json
// @Success		200			{object}	EmployeeResponse
// @Failure		400			{object}	EmployeeResponse
// @Failure		404			{object}	EmployeeResponse
// @Failure		500			{object}	EmployeeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			employee	body		EmployeeEditable	true	"Employee"
// @Router			/v1/employees/{id} [patch]
func (co Controller) UpdateEmployee(c *gin.Context) {
	employee, ok := findEmployee(c)
	if !ok {
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, EmployeeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	var data EmployeeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	// Hooks run on the loaded employee, not on the update data, so
	// the new values are cleaned up here
	data.Name = strings.TrimSpace(data.Name)
	data.Note = strings.TrimSpace(data.Note)
	data.HomeState = jurisdiction.Normalize(data.HomeState)

	if slices.Contains(updateFields, any("Name")) && data.Name == "" {
		e := models.ErrEmployeeNameEmpty.Error()
		c.JSON(http.StatusBadRequest, EmployeeResponse{
			Error: &e,
		})
		return
	}

	if !co.validState(data.HomeState) {
		e := errUnknownState.Error()
		c.JSON(http.StatusBadRequest, EmployeeResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&employee).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newEmployee(c, employee)
	c.JSON(http.StatusOK, EmployeeResponse{Data: &apiResource})
}

// @Summary		Delete employee
// @Description	Deletes an employee and all of their work allocations
// @Tags			Employees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/employees/{id} [delete]
func DeleteEmployee(c *gin.Context) {
	employee, ok := findEmployee(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&employee).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get coverage
// @Description	Returns the sum of the percentages of all allocations of the employee that are active on a specific day
// @Tags			Employees
// @Produce		json
// @Success		200		{object}	CoverageResponse
// @Failure		400		{object}	CoverageResponse
// @Failure		404		{object}	CoverageResponse
// @Failure		500		{object}	CoverageResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			date	query		string	true	"The day in YYYY-MM-DD format"
// @Router			/v1/employees/{id}/coverage [get]
func GetEmployeeCoverage(c *gin.Context) {
	var query QueryDate
	err := c.BindQuery(&query)
	if err == nil && query.Date == "" {
		err = errDateNotSetInQuery
	}

	var day types.Date
	if err == nil {
		day, err = types.ParseDate(query.Date)
	}

	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CoverageResponse{
			Error: &e,
		})
		return
	}

	employee, ok := findEmployee(c)
	if !ok {
		return
	}

	existing, err := models.AllocationsForEmployee(models.DB, employee.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CoverageResponse{
			Error: &e,
		})
		return
	}

	data := make([]Allocation, 0)
	for _, a := range existing {
		if a.Allocation().Range().Contains(day) {
			data = append(data, newAllocation(c, a))
		}
	}

	c.JSON(http.StatusOK, CoverageResponse{
		Data: &Coverage{
			Date:        day.String(),
			Percentage:  allocation.CoverageAt(models.Allocations(existing), day),
			Allocations: data,
		},
	})
}
