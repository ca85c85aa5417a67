package login

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/geotrack/internal/backend"
	"github.com/qdm12/geotrack/internal/constants"
	"github.com/qdm12/geotrack/internal/login/mock_login"
	"github.com/stretchr/testify/assert"
)

type noopWarner struct{}

func (noopWarner) Warn(string) {}

func Test_Flow_Submit(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		token         string
		loginErr      error
		notifyMessage string
		attempt       Attempt
	}{
		"success": {
			token: "abc",
			attempt: Attempt{
				State: StateAuthenticated,
				Email: "a@b.com",
				Token: "abc",
			},
		},
		"rejected_with_message": {
			loginErr: &backend.ResponseError{
				StatusCode: http.StatusUnauthorized,
				Message:    "Invalid credentials",
			},
			attempt: Attempt{
				State:   StateFailed,
				Email:   "a@b.com",
				Message: "Invalid credentials",
			},
		},
		"rejected_without_message": {
			loginErr: &backend.ResponseError{
				StatusCode: http.StatusUnauthorized,
				Body:       "nope",
			},
			attempt: Attempt{
				State:   StateFailed,
				Email:   "a@b.com",
				Message: constants.MessageLoginFailed,
			},
		},
		"server_error": {
			loginErr: &backend.ResponseError{
				StatusCode: http.StatusInternalServerError,
			},
			notifyMessage: "backend login failed: bad HTTP status received: " +
				"500 Internal Server Error",
			attempt: Attempt{
				State:   StateFailed,
				Email:   "a@b.com",
				Message: constants.MessageLoginFailed,
			},
		},
		"network_error": {
			loginErr:      errTest,
			notifyMessage: "backend login failed: test error",
			attempt: Attempt{
				State:   StateFailed,
				Email:   "a@b.com",
				Message: constants.MessageLoginFailed,
			},
		},
		"empty_token": {
			loginErr:      backend.ErrTokenEmpty,
			notifyMessage: "backend login failed: token is empty",
			attempt: Attempt{
				State:   StateFailed,
				Email:   "a@b.com",
				Message: constants.MessageLoginFailed,
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			backendClient := mock_login.NewMockBackend(ctrl)
			backendClient.EXPECT().Login(ctx, "a@b.com", "x").
				Return(testCase.token, testCase.loginErr)
			notifier := mock_login.NewMockNotifier(ctrl)
			if testCase.notifyMessage != "" {
				notifier.EXPECT().Notify(testCase.notifyMessage)
			}

			flow := New(backendClient, noopWarner{}, notifier)

			attempt := flow.Submit(ctx, "a@b.com", "x")

			assert.Equal(t, testCase.attempt, attempt)
		})
	}
}

func Test_State_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(99).String())
}

func Test_Flow_Submit_malformed(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		email    string
		password string
	}{
		"empty_email": {
			password: "x",
		},
		"bad_email": {
			email:    "not-an-email",
			password: "x",
		},
		"empty_password": {
			email: "a@b.com",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			flow := New(mock_login.NewMockBackend(ctrl), noopWarner{},
				mock_login.NewMockNotifier(ctrl))

			attempt := flow.Submit(context.Background(), testCase.email, testCase.password)

			expected := Attempt{
				State:   StateFailed,
				Email:   testCase.email,
				Message: constants.MessageLoginFailed,
			}
			assert.Equal(t, expected, attempt)
		})
	}
}
