package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrEmployeeNameNotUnique = errors.New("the employee name must be unique")
	ErrEmployeeNameEmpty     = errors.New("the employee name must not be empty")
)

var (
	ErrAllocationEffectiveDateMissing = errors.New("the effective date of an allocation must be set")
	ErrAllocationEndBeforeStart       = errors.New("the end date of an allocation must not be before its effective date")
	ErrAllocationImmutable            = errors.New("the state, percentage and dates of an allocation cannot be changed. Delete it and create a new one instead")
)
