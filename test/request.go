// Package test contains helpers for HTTP tests.
package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Request is a helper method to simplify making a HTTP request for tests.
//
// Structs, maps and slices are sent as JSON, url.Values as form data.
// Strings are sent as they are.
func Request(t *testing.T, handler http.Handler, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var reader io.Reader
	contentType := ""

	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	case url.Values:
		reader = strings.NewReader(b.Encode())
		contentType = "application/x-www-form-urlencoded"
	case *bytes.Buffer:
		reader = b
	default:
		kind := reflect.TypeOf(body).Kind()
		if kind != reflect.Struct && kind != reflect.Map && kind != reflect.Slice {
			assert.FailNow(t, "Unsupported request body", "%T", body)
		}

		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from struct input", err)
		}
		reader = bytes.NewReader(byteStr)
		contentType = "application/json"
	}

	req, err := http.NewRequest(method, reqURL, reader)
	require.Nil(t, err)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

// Cookie returns the value for the Cookie header that replays all cookies
// the response set.
func Cookie(r *httptest.ResponseRecorder) string {
	cookies := r.Result().Cookies()
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}
