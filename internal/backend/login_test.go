package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Login(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		statusCode int
		body       string
		token      string
		errWrapped error
		errMessage string
		message    string
	}{
		"success": {
			statusCode: http.StatusOK,
			body:       `{"token":"abc","user":{"email":"a@b.com"}}`,
			token:      "abc",
		},
		"created": {
			statusCode: http.StatusCreated,
			body:       `{"token":"abc"}`,
			token:      "abc",
		},
		"empty token": {
			statusCode: http.StatusOK,
			body:       `{}`,
			errWrapped: ErrTokenEmpty,
			errMessage: "token is empty",
		},
		"malformed body": {
			statusCode: http.StatusOK,
			body:       `not json`,
			errMessage: "decoding JSON response: invalid character 'o' in literal null (expecting 'u')",
		},
		"unauthorized with message": {
			statusCode: http.StatusUnauthorized,
			body:       `{"message":"Invalid credentials"}`,
			errWrapped: ErrBadHTTPStatus,
			errMessage: "bad HTTP status received: 401 Unauthorized: Invalid credentials",
			message:    "Invalid credentials",
		},
		"server error without message": {
			statusCode: http.StatusInternalServerError,
			body:       "internal\nerror",
			errWrapped: ErrBadHTTPStatus,
			errMessage: "bad HTTP status received: 500 Internal Server Error (internalerror)",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/login", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				var body map[string]string
				err := json.NewDecoder(r.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Equal(t, map[string]string{"email": "a@b.com", "password": "x"}, body)
				w.WriteHeader(testCase.statusCode)
				_, _ = w.Write([]byte(testCase.body))
			}))
			t.Cleanup(server.Close)

			client := New(server.Client(), server.URL+"/")

			token, err := client.Login(context.Background(), "a@b.com", "x")

			assert.Equal(t, testCase.token, token)
			if testCase.errMessage == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, testCase.errMessage)
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
			}
			var responseErr *ResponseError
			if errors.As(err, &responseErr) {
				assert.Equal(t, testCase.statusCode, responseErr.StatusCode)
				assert.Equal(t, testCase.message, responseErr.Message)
			}
		})
	}
}

func Test_Client_Login_unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := New(http.DefaultClient, url)

	_, err := client.Login(context.Background(), "a@b.com", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "doing request: ")
	var responseErr *ResponseError
	assert.False(t, errors.As(err, &responseErr))
}
