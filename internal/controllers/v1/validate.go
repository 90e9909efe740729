package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/payroll-zero/backend/internal/allocation"
	"github.com/payroll-zero/backend/internal/httputil"
	"github.com/payroll-zero/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Message keys for rejections. The English text is the key itself.
const (
	msgOutOfRange = "the percentage of an allocation must be larger than 0 and at most %d, but is %v"
	msgDuplicate  = "there already is an allocation for %s in an overlapping date range"
	msgExceeded   = "together with the allocations for %s, the combined percentage would be %.1f%%, which is more than %d%%"
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		msgOutOfRange: "der Anteil einer Zuordnung muss größer als 0 und höchstens %d sein, ist aber %v",
		msgDuplicate:  "es gibt bereits eine Zuordnung für %s in einem überlappenden Zeitraum",
		msgExceeded:   "zusammen mit den Zuordnungen für %s wäre der Gesamtanteil %.1f %%, das ist mehr als %d %%",
	},
	language.French: {
		msgOutOfRange: "le pourcentage d'une affectation doit être supérieur à 0 et au plus %d, mais il est de %v",
		msgDuplicate:  "il existe déjà une affectation pour %s sur une période qui se chevauche",
		msgExceeded:   "avec les affectations pour %s, le pourcentage total serait de %.1f %%, soit plus de %d %%",
	},
}

// RegisterTranslations adds the translated rejection messages to the
// default message catalog.
func RegisterTranslations() error {
	for tag, messages := range translations {
		for key, msg := range messages {
			err := message.SetString(tag, key, msg)
			if err != nil {
				return fmt.Errorf("registering %s message %q: %w", tag, key, err)
			}
		}
	}

	return nil
}

type Violation struct {
	Kind     allocation.ViolationKind `json:"kind" example:"PERCENTAGE_EXCEEDED"`                                                                                       // What rule the allocation violates
	States   []string                 `json:"states" example:"CA"`                                                                                                      // Codes of the states the allocation conflicts with
	Combined decimal.Decimal          `json:"combined" example:"110"`                                                                                                   // The combined percentage of the overlapping allocations, or the percentage of the allocation if it is out of range
	Message  string                   `json:"message" example:"together with the allocations for CA, the combined percentage would be 110.0%, which is more than 100%"` // Human readable description in the language of the request
}

type Verdict struct {
	Accepted  bool       `json:"accepted" example:"false"` // The allocation can be added
	Violation *Violation `json:"violation"`                // Details for allocations that can not be added. null if the allocation is accepted
}

type VerdictResponse struct {
	Error *string  `json:"error" example:"the state code is not a known US state or the District of Columbia"` // The error, if any occurred
	Data  *Verdict `json:"data"`                                                                               // The verdict for the allocation
}

// newViolation returns the API v1 representation of a rejection with the
// message in the language of the request.
func newViolation(p *message.Printer, r *allocation.Rejection) Violation {
	states := r.States
	if states == nil {
		states = []string{}
	}

	var msg string
	switch r.Kind {
	case allocation.OutOfRangePercentage:
		msg = p.Sprintf(msgOutOfRange, allocation.MaxPercentage.IntPart(), number.Decimal(r.Combined.InexactFloat64()))
	case allocation.DuplicateState:
		msg = p.Sprintf(msgDuplicate, strings.Join(states, ", "))
	case allocation.PercentageExceeded:
		msg = p.Sprintf(msgExceeded, strings.Join(states, ", "), r.Combined.InexactFloat64(), allocation.MaxPercentage.IntPart())
	default:
		msg = r.Error()
	}

	return Violation{
		Kind:     r.Kind,
		States:   states,
		Combined: r.Combined,
		Message:  msg,
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations/validate [options]
func OptionsAllocationValidate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Validate allocation
// @Description	Checks if a work allocation can be added for the employee without creating it.
// @Description	Rejections are not errors, they are returned with status 200 and a violation.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	VerdictResponse
// @Failure		400			{object}	VerdictResponse
// @Failure		404			{object}	VerdictResponse
// @Failure		500			{object}	VerdictResponse
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Param			Accept-Language	header	string	false	"Language for the violation message"
// @Router			/v1/allocations/validate [post]
func (co Controller) ValidateAllocation(c *gin.Context) {
	var editable AllocationEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VerdictResponse{
			Error: &e,
		})
		return
	}

	err = co.checkEditable(editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VerdictResponse{
			Error: &e,
		})
		return
	}

	err = editable.model().Check(models.DB)

	var rejection *allocation.Rejection
	if errors.As(err, &rejection) {
		violation := newViolation(httputil.Printer(c), rejection)
		c.JSON(http.StatusOK, VerdictResponse{
			Data: &Verdict{
				Accepted:  false,
				Violation: &violation,
			},
		})
		return
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), VerdictResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, VerdictResponse{
		Data: &Verdict{
			Accepted: true,
		},
	})
}
