package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/payroll-zero/backend/internal/httputil"
	"github.com/payroll-zero/backend/internal/jurisdiction"
	"github.com/payroll-zero/backend/internal/models"
	"github.com/payroll-zero/backend/internal/types"
)

func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAllocations)
		r.GET("", GetAllocations)
		r.POST("", co.CreateAllocations)
	}
	{
		r.OPTIONS("/validate", OptionsAllocationValidate)
		r.POST("/validate", co.ValidateAllocation)
	}
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", GetAllocation)
		r.PATCH("/:id", UpdateAllocation)
		r.DELETE("/:id", DeleteAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	_, ok := findAllocation(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// findAllocation binds the ID from the URI and fetches the allocation.
// If that fails, it writes the error response and returns false.
func findAllocation(c *gin.Context) (models.WorkAllocation, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.WorkAllocation{}, false
	}

	var allocation models.WorkAllocation
	err = models.DB.First(&allocation, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.WorkAllocation{}, false
	}

	return allocation, true
}

// checkEditable verifies the fields the database cannot verify on its own.
func (co Controller) checkEditable(editable AllocationEditable) error {
	if editable.EmployeeID == uuid.Nil {
		return errEmployeeIDNotSet
	}

	if editable.StateCode == "" || !co.validState(editable.StateCode) {
		return errUnknownState
	}

	return nil
}

// @Summary		Create allocations
// @Description	Creates new work allocations. Each allocation is validated against the existing allocations of the employee,
// @Description	including the ones created earlier in the same request.
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	AllocationCreateResponse
// @Failure		400			{object}	AllocationCreateResponse
// @Failure		404			{object}	AllocationCreateResponse
// @Failure		500			{object}	AllocationCreateResponse
// @Param			allocations	body		[]AllocationEditable	true	"Allocations"
// @Router			/v1/allocations [post]
func (co Controller) CreateAllocations(c *gin.Context) {
	var editables []AllocationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationCreateResponse{}

	for _, create := range editables {
		err = co.checkEditable(create)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Each create is its own transaction, so allocations created
		// before are part of the snapshot the next one is validated against
		allocation := create.model()
		err = models.DB.Create(&allocation).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newAllocation(c, allocation)
		r.Data = append(r.Data, AllocationResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get allocations
// @Description	Returns a list of work allocations
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	AllocationListResponse
// @Failure		500	{object}	AllocationListResponse
// @Router			/v1/allocations [get]
// @Param			employee	query	string	false	"Filter by employee ID"
// @Param			stateCode	query	string	false	"Filter by state code"
// @Param			isPrimary	query	bool	false	"Is the primary allocation"
// @Param			activeOn	query	string	false	"Only allocations active on this day, in YYYY-MM-DD format"
// @Param			offset		query	uint	false	"The offset of the first allocation returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of allocations to return. Defaults to 50."
func GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	filter.StateCode = jurisdiction.Normalize(filter.StateCode)
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("date(effective_date) ASC, state_code ASC").
		Where(&where, queryFields...)

	if filter.ActiveOn != "" {
		day, err := types.ParseDate(filter.ActiveOn)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, AllocationListResponse{
				Error: &s,
			})
			return
		}

		q = q.
			Where("date(effective_date) <= date(?)", day).
			Where(models.DB.Where("end_date IS NULL").Or("date(end_date) >= date(?)", day))
	}

	limit := limit(setFields, filter.Limit)
	q = q.Offset(int(filter.Offset)).Limit(limit)

	var allocations []models.WorkAllocation
	err := q.Find(&allocations).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation
// @Description	Returns a specific work allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [get]
func GetAllocation(c *gin.Context) {
	allocation, ok := findAllocation(c)
	if !ok {
		return
	}

	apiResource := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}

// @Summary		Update allocation
// @Description	Updates the notes and the primary flag of a work allocation. To change anything else,
// @Description	delete the allocation and create a new one.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocationPatch	true	"Allocation"
// @Router			/v1/allocations/{id} [patch]
func UpdateAllocation(c *gin.Context) {
	allocation, ok := findAllocation(c)
	if !ok {
		return
	}

	// Fields that cannot be updated are ignored since they are not
	// part of AllocationPatch
	updateFields, err := httputil.GetBodyFields(c, AllocationPatch{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	var data AllocationPatch
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&allocation).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}

// @Summary		Delete allocation
// @Description	Deletes a work allocation
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [delete]
func DeleteAllocation(c *gin.Context) {
	allocation, ok := findAllocation(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&allocation).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
