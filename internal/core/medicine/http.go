// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package medicine

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/medira/internal/platform/ctxutil"
	"github.com/taibuivan/medira/internal/platform/middleware"
	"github.com/taibuivan/medira/internal/platform/respond"
	"github.com/taibuivan/medira/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the medicine endpoints on the root router.
//
// # Endpoints
//   - GET    /medicines                : public catalogue listing.
//   - GET    /medicines/{id}           : one listing by id.
//   - GET    /medicines/seller/{email} : listings by owning seller.
//   - GET    /categoryDetails/{category}: listings inside one category.
//   - POST   /add_medicine             : Seller-only insert.
//   - DELETE /medicines/{id}           : owning seller or Admin.
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	router.Get("/medicines", handler.list)
	router.Get("/medicines/{id}", handler.get)
	router.Get("/medicines/seller/{email}", handler.listByAuthor)
	router.Get("/categoryDetails/{category}", handler.listByCategory)
	router.With(guard.Seller).Post("/add_medicine", handler.add)
	router.With(guard.Session).Delete("/medicines/{id}", handler.delete)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	medicines, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, medicines)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	listing, err := handler.service.Get(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listing)
}

func (handler *Handler) listByAuthor(writer http.ResponseWriter, request *http.Request) {
	medicines, err := handler.service.ListByAuthor(request.Context(), chi.URLParam(request, "email"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, medicines)
}

func (handler *Handler) listByCategory(writer http.ResponseWriter, request *http.Request) {
	medicines, err := handler.service.ListByCategory(request.Context(), chi.URLParam(request, "category"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, medicines)
}

type addMedicineRequest struct {
	Name        string  `json:"name"`
	GenericName string  `json:"genericName"`
	Category    string  `json:"category"`
	Company     string  `json:"company"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageURL"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
}

// add handles POST /add_medicine requests (Seller guard applied by the router).
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	var input addMedicineRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := (&validate.Validator{}).
		Required("name", input.Name).
		Required("category", input.Category).
		Positive("price", input.Price).
		Custom("discount", input.Discount < 0, "Must not be negative").
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims := ctxutil.GetSession(request.Context())

	insertedID, err := handler.service.Add(request.Context(), Medicine{
		Name:        input.Name,
		GenericName: input.GenericName,
		Category:    input.Category,
		Company:     input.Company,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
		Discount:    input.Discount,
	}, claims.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{"insertedId": insertedID})
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims := ctxutil.GetSession(request.Context())

	deletedCount, err := handler.service.Delete(request.Context(), chi.URLParam(request, "id"), claims.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int64{"deletedCount": deletedCount})
}
