package v1

import (
	pz_uuid "github.com/payroll-zero/backend/internal/uuid"
)

type URIID struct {
	ID pz_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URICode struct {
	Code string `uri:"code" binding:"required"` // The code of the jurisdiction
}

type QueryDate struct {
	Date string `form:"date" example:"2024-06-30"` // Calendar day in YYYY-MM-DD format
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
