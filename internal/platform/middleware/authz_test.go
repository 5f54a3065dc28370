// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/ctxutil"
	"github.com/taibuivan/medira/internal/platform/dberr"
	"github.com/taibuivan/medira/internal/platform/middleware"
	"github.com/taibuivan/medira/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	validToken string
	claims     *sec.SessionClaims
}

func (verifier *fakeVerifier) Verify(tokenString string) (*sec.SessionClaims, error) {
	if tokenString == verifier.validToken {
		return verifier.claims, nil
	}
	return nil, errors.New("bad token")
}

// fakeRoleLookup maps emails to stored roles.
type fakeRoleLookup struct {
	roles map[string]string
}

func (lookup *fakeRoleLookup) RoleByEmail(ctx context.Context, email string) (string, error) {
	role, ok := lookup.roles[email]
	if !ok {
		return "", dberr.ErrNotFound
	}
	return role, nil
}

// markerHandler records whether the inner handler was reached.
func markerHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*called = true
		writer.WriteHeader(http.StatusOK)
	})
}

// withSession builds a request carrying verified claims, as Authenticate
// would have left it.
func withSession(request *http.Request, email string) *http.Request {
	ctx := ctxutil.WithSession(request.Context(), &sec.SessionClaims{Email: email})
	return request.WithContext(ctx)
}

/*
TestAuthenticate_MissingCookie verifies that a request without the session
cookie proceeds as anonymous rather than being rejected.
*/
func TestAuthenticate_MissingCookie(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good", claims: &sec.SessionClaims{Email: "a@b.c"}}

	var called bool
	var seenClaims *sec.SessionClaims
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		called = true
		seenClaims = ctxutil.GetSession(request.Context())
	})

	request := httptest.NewRequest(http.MethodGet, "/medicines", nil)
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(inner).ServeHTTP(recorder, request)

	assert.True(t, called)
	assert.Nil(t, seenClaims)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestAuthenticate_InvalidToken verifies that a present-but-invalid cookie is
rejected with 401 before the handler runs.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good", claims: &sec.SessionClaims{Email: "a@b.c"}}

	var called bool
	request := httptest.NewRequest(http.MethodGet, "/medicines", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "forged"})
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(markerHandler(&called)).ServeHTTP(recorder, request)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestAuthenticate_ValidToken verifies that a valid cookie attaches the claims
to the request context.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good", claims: &sec.SessionClaims{Email: "buyer@example.com"}}

	var seenClaims *sec.SessionClaims
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenClaims = ctxutil.GetSession(request.Context())
	})

	request := httptest.NewRequest(http.MethodGet, "/medicines", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "good"})
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(inner).ServeHTTP(recorder, request)

	assert.NotNil(t, seenClaims)
	assert.Equal(t, "buyer@example.com", seenClaims.Email)
}

/*
TestRequireSession verifies the 401-on-anonymous behavior and the
pass-through for authenticated requests.
*/
func TestRequireSession(t *testing.T) {
	t.Run("anonymous_rejected", func(t *testing.T) {
		var called bool
		request := httptest.NewRequest(http.MethodGet, "/paymentForUser", nil)
		recorder := httptest.NewRecorder()

		middleware.RequireSession(markerHandler(&called)).ServeHTTP(recorder, request)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("authenticated_passes", func(t *testing.T) {
		var called bool
		request := withSession(httptest.NewRequest(http.MethodGet, "/paymentForUser", nil), "buyer@example.com")
		recorder := httptest.NewRecorder()

		middleware.RequireSession(markerHandler(&called)).ServeHTTP(recorder, request)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

/*
TestRequireRole covers the full guard matrix: anonymous, unregistered email,
wrong role, no role, and allowed role.
*/
func TestRequireRole(t *testing.T) {
	lookup := &fakeRoleLookup{roles: map[string]string{
		"admin@example.com":  "Admin",
		"seller@example.com": "Seller",
		"buyer@example.com":  "",
	}}
	adminOnly := middleware.RequireRole(lookup, "Admin")

	tests := []struct {
		name       string
		email      string
		anonymous  bool
		wantStatus int
		wantCalled bool
	}{
		{"anonymous", "", true, http.StatusUnauthorized, false},
		{"unregistered_email", "ghost@example.com", false, http.StatusForbidden, false},
		{"wrong_role", "seller@example.com", false, http.StatusForbidden, false},
		{"empty_role", "buyer@example.com", false, http.StatusForbidden, false},
		{"allowed_role", "admin@example.com", false, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			request := httptest.NewRequest(http.MethodGet, "/users", nil)
			if !tt.anonymous {
				request = withSession(request, tt.email)
			}
			recorder := httptest.NewRecorder()

			adminOnly(markerHandler(&called)).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestRequireRole_MultipleAllowed verifies exact string matching across an
allowed set with no hierarchy between roles.
*/
func TestRequireRole_MultipleAllowed(t *testing.T) {
	lookup := &fakeRoleLookup{roles: map[string]string{
		"seller@example.com": "Seller",
		"admin@example.com":  "Admin",
	}}
	guard := middleware.RequireRole(lookup, "Seller", "Admin")

	for _, email := range []string{"seller@example.com", "admin@example.com"} {
		var called bool
		request := withSession(httptest.NewRequest(http.MethodGet, "/advertisement", nil), email)
		recorder := httptest.NewRecorder()

		guard(markerHandler(&called)).ServeHTTP(recorder, request)

		assert.True(t, called, email)
	}
}
