// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/medira/internal/auth"
	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/sec"
)

func newTestRouter(production bool) (*chi.Mux, *sec.TokenCodec) {
	codec := sec.NewTokenCodec("test-secret", constants.AuthIssuer, time.Hour)
	router := chi.NewRouter()
	auth.NewHandler(codec, production).RegisterRoutes(router)
	return router, codec
}

// sessionCookieFrom extracts the session cookie from a recorded response.
func sessionCookieFrom(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %q cookie in response", constants.SessionCookieName)
	return nil
}

/*
TestIssueSession verifies POST /jwt sets a verifiable session cookie with
the development attribute set.
*/
func TestIssueSession(t *testing.T) {
	router, codec := newTestRouter(false)

	request := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"buyer@example.com"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	cookie := sessionCookieFrom(t, recorder)
	assert.Equal(t, constants.SessionCookiePath, cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)

	// The cookie value is a real session token for the posted email.
	claims, err := codec.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", claims.Email)
}

/*
TestIssueSession_ProductionAttributes verifies the cross-site attribute set
used when the frontend runs on another origin.
*/
func TestIssueSession_ProductionAttributes(t *testing.T) {
	router, _ := newTestRouter(true)

	request := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"buyer@example.com"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	cookie := sessionCookieFrom(t, recorder)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

/*
TestIssueSession_InvalidPayload verifies bad bodies are rejected before any
cookie is set.
*/
func TestIssueSession_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed_json", `{"email":`},
		{"missing_email", `{}`},
		{"invalid_email", `{"email":"not-an-address"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(false)

			request := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Empty(t, recorder.Result().Cookies())
		})
	}
}

/*
TestClearSession verifies POST /logout expires the cookie with the same
attributes used at set time, so browsers actually match and remove it.
*/
func TestClearSession(t *testing.T) {
	router, _ := newTestRouter(true)

	request := httptest.NewRequest(http.MethodPost, "/logout", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	cookie := sessionCookieFrom(t, recorder)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.Equal(t, constants.SessionCookiePath, cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}
