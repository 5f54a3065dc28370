// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/medira/internal/platform/middleware"
	"github.com/taibuivan/medira/internal/platform/respond"
	"github.com/taibuivan/medira/internal/platform/validate"
)

// Handler implements the cart HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the cart endpoints on the root router.
//
// # Endpoints
//   - POST /cart                  : deduplicated add (no guard).
//   - GET /carts/{email}          : session-guarded owner listing.
//   - DELETE /cart/{id}           : single-entry removal (no guard).
//   - DELETE /cart-delete/{email} : session-guarded post-checkout clear.
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	router.Post("/cart", handler.add)
	router.With(guard.Session).Get("/carts/{email}", handler.listForOwner)
	router.Delete("/cart/{id}", handler.removeByID)
	router.With(guard.Session).Delete("/cart-delete/{email}", handler.clearForOwner)
}

// addEntryRequest is the add-to-cart payload from the shop page.
type addEntryRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Company  string  `json:"company"`
	ImageURL *string `json:"imageURL"`
	Price    float64 `json:"price"`
}

// add handles POST /cart requests.
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input addEntryRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	v := (&validate.Validator{}).
		Required("name", input.Name).
		Required("email", input.Email)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	result, err := handler.service.AddToCart(request.Context(), Entry{
		Name:     input.Name,
		Email:    input.Email,
		Company:  input.Company,
		ImageURL: input.ImageURL,
		Price:    input.Price,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	if result.AlreadyInCart {
		respond.OK(writer, result)
		return
	}
	respond.Created(writer, result)
}

// listForOwner handles GET /carts/{email} requests.
func (handler *Handler) listForOwner(writer http.ResponseWriter, request *http.Request) {
	email := chi.URLParam(request, "email")

	entries, err := handler.service.ListForOwner(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

// removeByID handles DELETE /cart/{id} requests.
func (handler *Handler) removeByID(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	deleted, err := handler.service.RemoveByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int64{"deletedCount": deleted})
}

// clearForOwner handles DELETE /cart-delete/{email} requests.
func (handler *Handler) clearForOwner(writer http.ResponseWriter, request *http.Request) {
	email := chi.URLParam(request, "email")

	deleted, err := handler.service.ClearForOwner(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int64{"deletedCount": deleted})
}
