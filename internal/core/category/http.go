// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

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

// RegisterRoutes mounts the category endpoints on the root router.
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	router.Get("/categories", handler.list)
	router.With(guard.Admin).Post("/categories", handler.create)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

type createCategoryRequest struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageURL"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createCategoryRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := (&validate.Validator{}).Required("name", input.Name).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	insertedID, err := handler.service.Create(request.Context(), Category{
		Name:     input.Name,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{"insertedId": insertedID})
}
