// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advert

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/medira/internal/platform/ctxutil"
	"github.com/taibuivan/medira/internal/platform/middleware"
	"github.com/taibuivan/medira/internal/platform/respond"
	"github.com/taibuivan/medira/internal/platform/validate"
)

// Handler implements the advertisement HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the advertisement endpoints on the root router.
//
// # Endpoints
//   - GET /advertise_home_page       : public home slider content.
//   - PUT /advertise_status_update   : Admin-only status transition.
//   - POST /advertisement            : Seller-only advert request.
//   - GET /advertisements/{email}    : Seller-only own-request listing.
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	router.Get("/advertise_home_page", handler.listForHome)
	router.With(guard.Admin).Put("/advertise_status_update", handler.updateStatus)
	router.With(guard.Seller).Post("/advertisement", handler.create)
	router.With(guard.Seller).Get("/advertisements/{email}", handler.listForAuthor)
}

// listForHome handles GET /advertise_home_page requests.
func (handler *Handler) listForHome(writer http.ResponseWriter, request *http.Request) {
	promoted, err := handler.service.ListForHome(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, promoted)
}

// updateStatusRequest mutates exactly one field of one advertisement.
type updateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// updateStatus handles PUT /advertise_status_update requests.
func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	var input updateStatusRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := (&validate.Validator{}).
		Required("id", input.ID).
		Required("status", input.Status).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.SetStatus(request.Context(), input.ID, input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// createAdvertRequest is the seller's advert submission payload.
type createAdvertRequest struct {
	MedicineName string  `json:"medicineName"`
	Description  string  `json:"description"`
	ImageURL     *string `json:"imageURL"`
}

// create handles POST /advertisement requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input createAdvertRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if err := (&validate.Validator{}).
		Required("medicineName", input.MedicineName).
		Required("description", input.Description).
		MaxLen("description", input.Description, 2000).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	claims := ctxutil.GetSession(request.Context())

	insertedID, err := handler.service.Create(request.Context(), Advertisement{
		MedicineName: input.MedicineName,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
	}, claims.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, map[string]string{"insertedId": insertedID})
}

// listForAuthor handles GET /advertisements/{email} requests.
func (handler *Handler) listForAuthor(writer http.ResponseWriter, request *http.Request) {
	email := chi.URLParam(request, "email")

	adverts, err := handler.service.ListForAuthor(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, adverts)
}
