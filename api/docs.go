// Package docs holds the OpenAPI description of the backend. It is
// generated from the annotations of the handlers with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.RootResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.VersionResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": ["v1"],
                "summary": "v1 API",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.V1Response"}}
                }
            },
            "delete": {
                "description": "Permanently deletes all employees and work allocations",
                "tags": ["v1"],
                "summary": "Delete everything",
                "parameters": [
                    {"type": "string", "description": "Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'", "name": "confirm", "in": "query"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["v1"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/employees": {
            "get": {
                "description": "Returns a list of employees",
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "Get employees",
                "parameters": [
                    {"type": "string", "description": "Filter by name", "name": "name", "in": "query"},
                    {"type": "string", "description": "Filter by note", "name": "note", "in": "query"},
                    {"type": "string", "description": "Filter by home state", "name": "homeState", "in": "query"},
                    {"type": "string", "description": "Search for this text in name and note", "name": "search", "in": "query"},
                    {"type": "integer", "description": "The offset of the first employee returned. Defaults to 0.", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Maximum number of employees to return. Defaults to 50.", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.EmployeeListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.EmployeeListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.EmployeeListResponse"}}
                }
            },
            "post": {
                "description": "Creates new employees",
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "Create employees",
                "parameters": [
                    {"description": "Employees", "name": "employees", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.EmployeeEditable"}}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.EmployeeCreateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.EmployeeCreateResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.EmployeeCreateResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Employees"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/employees/{id}": {
            "get": {
                "description": "Returns a specific employee",
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "Get employee",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.EmployeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.EmployeeResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.EmployeeResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.EmployeeResponse"}}
                }
            },
            "patch": {
                "description": "Updates an existing employee. Only values to be updated need to be specified.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "Update employee",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true},
                    {"description": "Employee", "name": "employee", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.EmployeeEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.EmployeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.EmployeeResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.EmployeeResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.EmployeeResponse"}}
                }
            },
            "delete": {
                "description": "Deletes an employee and all of their work allocations",
                "tags": ["Employees"],
                "summary": "Delete employee",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Employees"],
                "summary": "Allowed HTTP verbs",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/employees/{id}/coverage": {
            "get": {
                "description": "Returns the sum of the percentages of all allocations of the employee that are active on a specific day",
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "Get coverage",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "The day in YYYY-MM-DD format", "name": "date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.CoverageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.CoverageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.CoverageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.CoverageResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Employees"],
                "summary": "Allowed HTTP verbs",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/allocations": {
            "get": {
                "description": "Returns a list of work allocations",
                "produces": ["application/json"],
                "tags": ["Allocations"],
                "summary": "Get allocations",
                "parameters": [
                    {"type": "string", "description": "Filter by employee ID", "name": "employee", "in": "query"},
                    {"type": "string", "description": "Filter by state code", "name": "stateCode", "in": "query"},
                    {"type": "boolean", "description": "Is the primary allocation", "name": "isPrimary", "in": "query"},
                    {"type": "string", "description": "Only allocations active on this day, in YYYY-MM-DD format", "name": "activeOn", "in": "query"},
                    {"type": "integer", "description": "The offset of the first allocation returned. Defaults to 0.", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Maximum number of allocations to return. Defaults to 50.", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.AllocationListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.AllocationListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.AllocationListResponse"}}
                }
            },
            "post": {
                "description": "Creates new work allocations. Each allocation is validated against the existing allocations of the employee, including the ones created earlier in the same request.",
                "produces": ["application/json"],
                "tags": ["Allocations"],
                "summary": "Create allocations",
                "parameters": [
                    {"description": "Allocations", "name": "allocations", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.AllocationEditable"}}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.AllocationCreateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.AllocationCreateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.AllocationCreateResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.AllocationCreateResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Allocations"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/allocations/validate": {
            "post": {
                "description": "Checks if a work allocation can be added for the employee without creating it. Rejections are not errors, they are returned with status 200 and a violation.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Allocations"],
                "summary": "Validate allocation",
                "parameters": [
                    {"description": "Allocation", "name": "allocation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.AllocationEditable"}},
                    {"type": "string", "description": "Language for the violation message", "name": "Accept-Language", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.VerdictResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.VerdictResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.VerdictResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.VerdictResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Allocations"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/allocations/{id}": {
            "get": {
                "description": "Returns a specific work allocation",
                "produces": ["application/json"],
                "tags": ["Allocations"],
                "summary": "Get allocation",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.AllocationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.AllocationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.AllocationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.AllocationResponse"}}
                }
            },
            "patch": {
                "description": "Updates the notes and the primary flag of a work allocation. To change anything else, delete the allocation and create a new one.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Allocations"],
                "summary": "Update allocation",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true},
                    {"description": "Allocation", "name": "allocation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.AllocationPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.AllocationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.AllocationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.AllocationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.AllocationResponse"}}
                }
            },
            "delete": {
                "description": "Deletes a work allocation",
                "tags": ["Allocations"],
                "summary": "Delete allocation",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Allocations"],
                "summary": "Allowed HTTP verbs",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/jurisdictions": {
            "get": {
                "description": "Returns the US states and the District of Columbia, including their reciprocity agreements",
                "produces": ["application/json"],
                "tags": ["Jurisdictions"],
                "summary": "Get jurisdictions",
                "parameters": [{"type": "string", "description": "Glob pattern for the code, e.g. N*", "name": "code", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.JurisdictionListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.JurisdictionListResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Jurisdictions"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/jurisdictions/{code}": {
            "get": {
                "description": "Returns a specific jurisdiction",
                "produces": ["application/json"],
                "tags": ["Jurisdictions"],
                "summary": "Get jurisdiction",
                "parameters": [{"type": "string", "description": "Two letter code of the state", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.JurisdictionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/v1.JurisdictionResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Jurisdictions"],
                "summary": "Allowed HTTP verbs",
                "parameters": [{"type": "string", "description": "Two letter code of the state", "name": "code", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "allocation.ViolationKind": {
            "type": "string",
            "enum": ["DUPLICATE_STATE", "PERCENTAGE_EXCEEDED", "OUT_OF_RANGE_PERCENTAGE"],
            "x-enum-varnames": ["DuplicateState", "PercentageExceeded", "OutOfRangePercentage"]
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "type": "object",
                    "properties": {
                        "docs": {"type": "string", "example": "https://example.com/api/docs/index.html"},
                        "healthz": {"type": "string", "example": "https://example.com/api/healthz"},
                        "version": {"type": "string", "example": "https://example.com/api/version"},
                        "metrics": {"type": "string", "example": "https://example.com/api/metrics"},
                        "v1": {"type": "string", "example": "https://example.com/api/v1"}
                    }
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "version": {"type": "string", "example": "1.1.0"}
                    }
                }
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {
                "links": {
                    "type": "object",
                    "properties": {
                        "employees": {"type": "string", "example": "https://example.com/api/v1/employees"},
                        "allocations": {"type": "string", "example": "https://example.com/api/v1/allocations"},
                        "validate": {"type": "string", "example": "https://example.com/api/v1/allocations/validate"},
                        "jurisdictions": {"type": "string", "example": "https://example.com/api/v1/jurisdictions"}
                    }
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "the specified resource ID is not a valid UUID"}
            }
        },
        "v1.Pagination": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 25},
                "offset": {"type": "integer", "example": 50},
                "limit": {"type": "integer", "example": 25},
                "total": {"type": "integer", "example": 827}
            }
        },
        "v1.EmployeeEditable": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Jane Doe"},
                "note": {"type": "string", "default": "", "example": "Commutes twice a week"},
                "homeState": {"type": "string", "default": "", "example": "PA"}
            }
        },
        "v1.Employee": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "createdAt": {"type": "string", "example": "2022-04-02T19:28:44.491514Z"},
                "updatedAt": {"type": "string", "example": "2022-04-17T20:14:01.048145Z"},
                "name": {"type": "string", "example": "Jane Doe"},
                "note": {"type": "string", "example": "Commutes twice a week"},
                "homeState": {"type": "string", "example": "PA"},
                "links": {
                    "type": "object",
                    "properties": {
                        "self": {"type": "string"},
                        "allocations": {"type": "string"},
                        "coverage": {"type": "string"}
                    }
                }
            }
        },
        "v1.EmployeeResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "data": {"$ref": "#/definitions/v1.Employee"}
            }
        },
        "v1.EmployeeListResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/v1.Employee"}},
                "pagination": {"$ref": "#/definitions/v1.Pagination"}
            }
        },
        "v1.EmployeeCreateResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/v1.EmployeeResponse"}}
            }
        },
        "v1.CoverageResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "the date query parameter must be set"},
                "data": {
                    "type": "object",
                    "properties": {
                        "date": {"type": "string", "example": "2024-06-30"},
                        "percentage": {"type": "string", "example": "100"},
                        "allocations": {"type": "array", "items": {"$ref": "#/definitions/v1.Allocation"}}
                    }
                }
            }
        },
        "v1.AllocationEditable": {
            "type": "object",
            "properties": {
                "employeeId": {"type": "string", "example": "7fd1d5c1-7bc8-4bb3-a4e4-79e6fd5c8bd1"},
                "stateCode": {"type": "string", "example": "NJ"},
                "percentage": {"type": "number", "maximum": 100, "minimum": 0.00000001, "example": 60},
                "effectiveDate": {"type": "string", "example": "2024-01-01"},
                "endDate": {"type": "string", "example": "2024-12-31"},
                "isPrimary": {"type": "boolean", "default": false, "example": true},
                "notes": {"type": "string", "default": "", "example": "Office in Newark, Mondays to Wednesdays"}
            }
        },
        "v1.AllocationPatch": {
            "type": "object",
            "properties": {
                "isPrimary": {"type": "boolean", "example": false},
                "notes": {"type": "string", "example": "Back in office"}
            }
        },
        "v1.Allocation": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "0c2f8e5d-7bd8-4c5b-9a0f-1b1f5a4b7a0e"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "employeeId": {"type": "string"},
                "stateCode": {"type": "string", "example": "NJ"},
                "percentage": {"type": "string", "example": "60"},
                "effectiveDate": {"type": "string", "example": "2024-01-01"},
                "endDate": {"type": "string", "example": "2024-12-31"},
                "isPrimary": {"type": "boolean"},
                "notes": {"type": "string"},
                "links": {
                    "type": "object",
                    "properties": {
                        "self": {"type": "string"},
                        "employee": {"type": "string"},
                        "jurisdiction": {"type": "string"}
                    }
                }
            }
        },
        "v1.AllocationResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "there already is an allocation for NJ in an overlapping date range"},
                "data": {"$ref": "#/definitions/v1.Allocation"}
            }
        },
        "v1.AllocationListResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/v1.Allocation"}},
                "pagination": {"$ref": "#/definitions/v1.Pagination"}
            }
        },
        "v1.AllocationCreateResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/v1.AllocationResponse"}}
            }
        },
        "v1.Violation": {
            "type": "object",
            "properties": {
                "kind": {"$ref": "#/definitions/allocation.ViolationKind"},
                "states": {"type": "array", "items": {"type": "string"}, "example": ["CA"]},
                "combined": {"type": "string", "example": "110"},
                "message": {"type": "string", "example": "together with the allocations for CA, the combined percentage would be 110.0%, which is more than 100%"}
            }
        },
        "v1.VerdictResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "the state code is not a known US state or the District of Columbia"},
                "data": {
                    "type": "object",
                    "properties": {
                        "accepted": {"type": "boolean", "example": false},
                        "violation": {"$ref": "#/definitions/v1.Violation"}
                    }
                }
            }
        },
        "v1.Jurisdiction": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "NJ"},
                "name": {"type": "string", "example": "New Jersey"},
                "noIncomeTax": {"type": "boolean", "example": false},
                "reciprocity": {"type": "array", "items": {"type": "string"}, "example": ["PA"]},
                "links": {
                    "type": "object",
                    "properties": {
                        "self": {"type": "string"},
                        "allocations": {"type": "string"}
                    }
                }
            }
        },
        "v1.JurisdictionResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "there is no jurisdiction with this code"},
                "data": {"$ref": "#/definitions/v1.Jurisdiction"}
            }
        },
        "v1.JurisdictionListResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/v1.Jurisdiction"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
