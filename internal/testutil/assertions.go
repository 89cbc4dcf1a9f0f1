package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertCodes verifies the response body is exactly the given array of wire
// codes
func AssertCodes(t *testing.T, resp *http.Response, expected ...string) {
	t.Helper()

	var codes []string
	AssertJSONResponse(t, resp, &codes)
	assert.Equal(t, expected, codes, "wire code mismatch")
}

// DecodeMixedArray decodes a response like ["success", 5] into raw JSON
// values for element-wise checks
func DecodeMixedArray(t *testing.T, resp *http.Response) []json.RawMessage {
	t.Helper()

	var values []json.RawMessage
	AssertJSONResponse(t, resp, &values)
	return values
}
