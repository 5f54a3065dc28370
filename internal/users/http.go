// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/medira/internal/platform/middleware"
	"github.com/taibuivan/medira/internal/platform/respond"
	"github.com/taibuivan/medira/internal/platform/validate"
)

// Handler implements the user-directory HTTP endpoints.
type Handler struct {
	directory *Directory
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(directory *Directory) *Handler {
	return &Handler{directory: directory}
}

// RegisterRoutes mounts the user endpoints on the root router.
//
// # Endpoints
//   - PUT /user           : idempotent register-or-fetch (no guard; runs at login).
//   - GET /users          : Admin-only directory listing.
//   - PUT /userRoleUpdate : Admin-only role mutation.
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	router.Put("/user", handler.registerOrFetch)
	router.With(guard.Admin).Get("/users", handler.list)
	router.With(guard.Admin).Put("/userRoleUpdate", handler.updateRole)
}

// upsertUserRequest is the login-time profile payload from the frontend.
type upsertUserRequest struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	PhotoURL *string `json:"photoURL"`
	Role     string  `json:"role"`
}

// registerOrFetch handles PUT /user requests.
func (handler *Handler) registerOrFetch(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input upsertUserRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	v := (&validate.Validator{}).Required("email", input.Email)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	user, created, err := handler.directory.RegisterOrFetch(request.Context(), User{
		Email:    input.Email,
		Name:     input.Name,
		PhotoURL: input.PhotoURL,
		Role:     Role(input.Role),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	if created {
		respond.Created(writer, user)
		return
	}
	respond.OK(writer, user)
}

// list handles GET /users requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	accounts, err := handler.directory.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, accounts)
}

// updateRoleRequest mutates exactly one field of one account.
type updateRoleRequest struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// updateRole handles PUT /userRoleUpdate requests.
func (handler *Handler) updateRole(writer http.ResponseWriter, request *http.Request) {
	var input updateRoleRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := (&validate.Validator{}).
		Required("id", input.ID).
		Required("role", input.Role).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.directory.UpdateRole(request.Context(), input.ID, input.Role)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
