// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package middleware provides the HTTP middleware chain for the Medira API server.
//
// # Guard Chain
//
// Authentication and authorization are expressed as an ordered, composable
// chain applied declaratively per route: Authenticate (global, attaches the
// verified session), then RequireSession and/or RequireRole where an
// operation demands it. No handler re-implements a guard inline.
package middleware

import (
	"context"
	"net/http"

	"github.com/taibuivan/medira/internal/platform/apperr"
	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/ctxutil"
	"github.com/taibuivan/medira/internal/platform/dberr"
	"github.com/taibuivan/medira/internal/platform/respond"
	"github.com/taibuivan/medira/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec.TokenCodec]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.SessionClaims, error)
}

// RoleLookup resolves the persisted role for an authenticated email.
//
// The role guard deliberately reads the stored user record rather than a role
// claim: role changes made by an Admin take effect on the next request, not
// the next login.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// Guards bundles the per-route guard middlewares, wired once at startup.
type Guards struct {
	// Session rejects anonymous requests.
	Session func(http.Handler) http.Handler

	// Admin and Seller additionally enforce the stored role.
	Admin  func(http.Handler) http.Handler
	Seller func(http.Handler) http.Handler
}

// Authenticate extracts and verifies the session token from the request's
// cookie store.
//
// # Flow
//  1. Read the 'token' cookie.
//  2. If absent, the request proceeds as anonymous — public endpoints work
//     without a session, and [RequireSession] fails closed on protected ones.
//  3. If present, verify the signature via [TokenVerifier].
//  4. Inject [*sec.SessionClaims] into the request context for downstream use.
//
// A present-but-invalid token is rejected immediately with a message distinct
// from the missing-token case (same 401 status class).
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired session"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithSession(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.SessionClaims] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized before any business logic
//     runs — a guard failure never partially applies a mutation.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetSession(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests whose stored user role is not in the allowed set.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically
// implies [RequireSession] so you don't need to mount both.
//
// # Flow
//  1. Check if [*sec.SessionClaims] exists in context (implies AuthN) — 401.
//  2. Look up the persisted user record by email via [RoleLookup].
//  3. No such user, or role not in the allowed set — 403.
//
// Membership is exact string comparison: there is no role hierarchy, and a
// user without a role matches nothing. The observed behavior answered 401 for
// both guard failures; splitting them into 401/403 is a deliberate fix.
func RequireRole(lookup RoleLookup, allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetSession(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Stored Role Lookup ─────────────────────────────────────────
			role, err := lookup.RoleByEmail(request.Context(), claims.Email)
			if err != nil {
				if dberr.IsNotFound(err) {
					// A valid token for an unregistered email carries no privileges.
					respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
					return
				}
				respond.Error(writer, request, err)
				return
			}

			// ── 3. Authorization Check ────────────────────────────────────────
			for _, allowedRole := range allowed {
				if role == allowedRole {
					next.ServeHTTP(writer, request)
					return
				}
			}

			respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
		})
	}
}
