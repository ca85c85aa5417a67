package backend

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/qdm12/geotrack/internal/network"
)

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// makeResponseError reads and closes the response body.
func makeResponseError(response *http.Response) *ResponseError {
	b, _ := io.ReadAll(response.Body)
	_ = response.Body.Close()

	var data struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(b, &data)

	return &ResponseError{
		StatusCode: response.StatusCode,
		Message:    data.Message,
		Body:       network.ToSingleLine(string(b)),
	}
}
