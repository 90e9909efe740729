// Package test contains helpers for tests of the HTTP API.
package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/payroll-zero/backend/internal/router"
	"github.com/stretchr/testify/require"
)

// body returns the request body. Strings and byte slices are sent as they
// are so that tests can send malformed JSON, everything else is encoded.
func body(t *testing.T, b any) io.Reader {
	switch v := b.(type) {
	case nil:
		return http.NoBody
	case string:
		return bytes.NewBufferString(v)
	case []byte:
		return bytes.NewBuffer(v)
	case io.Reader:
		return v
	default:
		data, err := json.Marshal(v)
		require.Nil(t, err, "request body could not be encoded")
		return bytes.NewBuffer(data)
	}
}

// Request sends a request to a fully configured router with the API
// mounted at the base URL from API_URL. The router and its metrics are set
// up for every request and torn down afterwards.
func Request(t *testing.T, method, reqURL string, b any, headers ...map[string]string) httptest.ResponseRecorder {
	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	require.Nil(t, err, "router could not be configured")

	router.AttachRoutes(r.Group("/"))

	req, err := http.NewRequest(method, reqURL, body(t, b))
	require.Nil(t, err)

	for _, h := range headers {
		for header, value := range h {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes the JSON response body into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), target)
	require.Nil(t, err, "response %q could not be decoded into %v. Request ID: %s", r.Body, reflect.TypeOf(target), r.Result().Header.Get("x-request-id"))
}

// AssertHTTPStatus fails the test immediately if the response status is not
// one of the expected ones.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
