// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package auth implements the cookie-carried session layer.
//
// # Architecture
//
// Authentication happens in the frontend against the identity provider; this
// API only turns a proven identity into a signed session cookie and back.
// The /jwt endpoint mirrors that trust model: whatever email the frontend
// posts after its own login flow is signed verbatim into the session token.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/medira/internal/platform/respond"
	"github.com/taibuivan/medira/internal/platform/sec"
	"github.com/taibuivan/medira/internal/platform/validate"
)

// Handler implements the session lifecycle endpoints.
type Handler struct {
	codec      *sec.TokenCodec
	production bool
}

// NewHandler constructs a new [Handler].
//
// # Parameters
//   - codec: The session token codec.
//   - production: Selects the strict cross-site cookie attributes.
func NewHandler(codec *sec.TokenCodec, production bool) *Handler {
	return &Handler{codec: codec, production: production}
}

// RegisterRoutes mounts the session endpoints on the root router.
//
// # Endpoints
//   - POST /jwt    : issues a session cookie from the posted identity claims.
//   - POST /logout : clears the session cookie.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/jwt", handler.issueSession)
	router.Post("/logout", handler.clearSession)
}

// issueSessionRequest carries the identity claims posted at login time.
type issueSessionRequest struct {
	Email string `json:"email"`
}

// issueSession handles POST /jwt requests.
//
// # Returns
//   - Writes HTTP 200 OK with {"success": true} and the Set-Cookie header.
//   - Writes HTTP 400 Bad Request if the email claim is missing or malformed.
func (handler *Handler) issueSession(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input issueSessionRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if err := (&validate.Validator{}).
		Required("email", input.Email).
		Email("email", input.Email).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := handler.codec.Sign(input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Cookie Delivery ────────────────────────────────────────────────

	SetSessionCookie(writer, token, handler.codec.TTL(), handler.production)
	respond.OK(writer, map[string]bool{"success": true})
}

// clearSession handles POST /logout requests.
//
// Logout is purely client-side state removal: the token itself stays valid
// until it expires, so the cookie must actually be removed — hence the
// attribute-for-attribute mirror of the set path.
func (handler *Handler) clearSession(writer http.ResponseWriter, request *http.Request) {
	ClearSessionCookie(writer, handler.production)
	respond.OK(writer, map[string]bool{"success": true})
}
