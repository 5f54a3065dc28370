// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/medira/internal/platform/ctxutil"
	"github.com/taibuivan/medira/internal/platform/middleware"
	"github.com/taibuivan/medira/internal/platform/respond"
	"github.com/taibuivan/medira/internal/platform/validate"
)

// Handler implements the payment HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the payment endpoints on the root router.
//
// # Endpoints
//   - POST /create-payment-intent : session-guarded intent creation.
//   - POST /payment               : ledger append (no guard).
//   - GET /paymentForAdmin        : Admin-only platform-wide summary.
//   - GET /paymentForUser         : session-guarded own-spend summary.
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	router.With(guard.Session).Post("/create-payment-intent", handler.createIntent)
	router.Post("/payment", handler.record)
	router.With(guard.Admin).Get("/paymentForAdmin", handler.summaryForAdmin)
	router.With(guard.Session).Get("/paymentForUser", handler.summaryForBuyer)
}

// createIntentRequest carries the cart total in major units.
type createIntentRequest struct {
	Price float64 `json:"price"`
}

// createIntent handles POST /create-payment-intent requests.
func (handler *Handler) createIntent(writer http.ResponseWriter, request *http.Request) {
	var input createIntentRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := (&validate.Validator{}).
		Positive("price", input.Price).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	clientSecret, err := handler.service.CreateIntent(request.Context(), input.Price)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"clientSecret": clientSecret})
}

// recordPaymentRequest is the post-checkout confirmation from the frontend.
type recordPaymentRequest struct {
	Email         string      `json:"email"`
	Price         interface{} `json:"price"`
	TransactionID string      `json:"transactionId"`
	MedicineNames []string    `json:"medicineNames"`
	Date          string      `json:"date"`
}

// record handles POST /payment requests.
func (handler *Handler) record(writer http.ResponseWriter, request *http.Request) {
	var input recordPaymentRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := (&validate.Validator{}).Required("email", input.Email)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	insertedID, err := handler.service.Record(request.Context(), Payment{
		Email:         input.Email,
		Price:         input.Price,
		TransactionID: input.TransactionID,
		MedicineNames: input.MedicineNames,
		Date:          input.Date,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{"insertedId": insertedID})
}

// summaryForAdmin handles GET /paymentForAdmin requests.
func (handler *Handler) summaryForAdmin(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.SummaryForAdmin(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

// summaryForBuyer handles GET /paymentForUser requests.
//
// The filter email comes from the session claims, never from the query
// string, so a buyer cannot read another buyer's ledger.
func (handler *Handler) summaryForBuyer(writer http.ResponseWriter, request *http.Request) {
	claims := ctxutil.GetSession(request.Context())

	summary, err := handler.service.SummaryForBuyer(request.Context(), claims.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}
