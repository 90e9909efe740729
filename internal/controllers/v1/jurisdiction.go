package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/payroll-zero/backend/internal/httputil"
	"github.com/payroll-zero/backend/internal/jurisdiction"
	"github.com/payroll-zero/backend/internal/models"
)

type JurisdictionLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/jurisdictions/NJ"`                // The jurisdiction itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?stateCode=NJ"` // Work allocations to this jurisdiction
}

type Jurisdiction struct {
	jurisdiction.State
	Links JurisdictionLinks `json:"links"`
}

func newJurisdiction(c *gin.Context, state jurisdiction.State) Jurisdiction {
	url := c.GetString(string(models.DBContextURL))

	return Jurisdiction{
		State: state,
		Links: JurisdictionLinks{
			Self:        fmt.Sprintf("%s/v1/jurisdictions/%s", url, state.Code),
			Allocations: fmt.Sprintf("%s/v1/allocations?stateCode=%s", url, state.Code),
		},
	}
}

type JurisdictionListResponse struct {
	Data  []Jurisdiction `json:"data"`  // List of jurisdictions
	Error *string        `json:"error"` // The error, if any occurred
}

type JurisdictionResponse struct {
	Data  *Jurisdiction `json:"data"`                                                    // Data for the jurisdiction
	Error *string       `json:"error" example:"there is no jurisdiction with this code"` // The error, if any occurred
}

type JurisdictionQueryFilter struct {
	Code string `form:"code"` // Glob pattern for the code, e.g. "N*"
}

func (co Controller) RegisterJurisdictionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsJurisdictions)
		r.GET("", co.GetJurisdictions)
	}
	{
		r.OPTIONS("/:code", co.OptionsJurisdictionDetail)
		r.GET("/:code", co.GetJurisdiction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Jurisdictions
// @Success		204
// @Router			/v1/jurisdictions [options]
func OptionsJurisdictions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Jurisdictions
// @Success		204
// @Failure		404		{object}	httpError
// @Param			code	path		string	true	"Two letter code of the state"
// @Router			/v1/jurisdictions/{code} [options]
func (co Controller) OptionsJurisdictionDetail(c *gin.Context) {
	_, ok := co.findJurisdiction(c)
	if !ok {
		return
	}

	httputil.OptionsGet(c)
}

func (co Controller) findJurisdiction(c *gin.Context) (jurisdiction.State, bool) {
	var uri URICode
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return jurisdiction.State{}, false
	}

	state, ok := co.Jurisdictions.Get(jurisdiction.Normalize(uri.Code))
	if !ok {
		c.JSON(status(errJurisdictionNotFound), httpError{
			Error: errJurisdictionNotFound.Error(),
		})
		return jurisdiction.State{}, false
	}

	return state, true
}

// @Summary		Get jurisdictions
// @Description	Returns the US states and the District of Columbia, including their reciprocity agreements
// @Tags			Jurisdictions
// @Produce		json
// @Success		200		{object}	JurisdictionListResponse
// @Failure		400		{object}	JurisdictionListResponse
// @Param			code	query		string	false	"Glob pattern for the code, e.g. N*"
// @Router			/v1/jurisdictions [get]
func (co Controller) GetJurisdictions(c *gin.Context) {
	var filter JurisdictionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, JurisdictionListResponse{
			Error: &s,
		})
		return
	}

	states := co.Jurisdictions.Match(filter.Code)
	data := make([]Jurisdiction, 0, len(states))
	for _, state := range states {
		data = append(data, newJurisdiction(c, state))
	}

	c.JSON(http.StatusOK, JurisdictionListResponse{Data: data})
}

// @Summary		Get jurisdiction
// @Description	Returns a specific jurisdiction
// @Tags			Jurisdictions
// @Produce		json
// @Success		200		{object}	JurisdictionResponse
// @Failure		404		{object}	JurisdictionResponse
// @Param			code	path		string	true	"Two letter code of the state"
// @Router			/v1/jurisdictions/{code} [get]
func (co Controller) GetJurisdiction(c *gin.Context) {
	state, ok := co.findJurisdiction(c)
	if !ok {
		return
	}

	apiResource := newJurisdiction(c, state)
	c.JSON(http.StatusOK, JurisdictionResponse{Data: &apiResource})
}
