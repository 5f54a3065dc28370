// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Service implements intent creation, ledger recording, and the revenue
// aggregates shown on the admin and user dashboards.
type Service struct {
	repository Repository
	gateway    Gateway
	logger     *slog.Logger
}

func NewService(repository Repository, gateway Gateway, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		gateway:    gateway,
		logger:     logger,
	}
}

// CreateIntent opens a card payment for the given major-unit price and
// returns the processor's client secret.
//
// Major-to-minor conversion truncates: 10.999 becomes 1099 cents. Prices
// arrive with at most two decimals from the catalogue so nothing is lost in
// practice, and truncation never overcharges.
func (service *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	amountMinor := int64(price * 100)

	clientSecret, err := service.gateway.CreateIntent(ctx, amountMinor, "usd")
	if err != nil {
		return "", err
	}

	service.logger.Info("payment_intent_created",
		slog.Int64("amount_minor", amountMinor),
	)
	return clientSecret, nil
}

// Record appends a completed payment to the ledger verbatim.
func (service *Service) Record(ctx context.Context, input Payment) (string, error) {
	insertedID, err := service.repository.Insert(ctx, input)
	if err != nil {
		return "", err
	}

	service.logger.Info("payment_recorded",
		slog.String("buyer", input.Email),
		slog.String("transaction_id", input.TransactionID),
	)
	return insertedID, nil
}

// Summary is a filtered ledger view with its whole-unit revenue total.
type Summary struct {
	Payments []Payment `json:"payments"`
	Total    int64     `json:"total"`
}

// SummaryForAdmin returns every payment with the platform-wide total.
func (service *Service) SummaryForAdmin(ctx context.Context) (*Summary, error) {
	return service.summary(ctx, nil)
}

// SummaryForBuyer returns one buyer's payments with their spend total.
func (service *Service) SummaryForBuyer(ctx context.Context, email string) (*Summary, error) {
	return service.summary(ctx, bson.M{"email": email})
}

func (service *Service) summary(ctx context.Context, filter interface{}) (*Summary, error) {
	payments, err := service.repository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, payment := range payments {
		total += wholeUnits(payment.Price)
	}

	return &Summary{Payments: payments, Total: total}, nil
}

// wholeUnits normalizes a stored price to whole currency units.
//
// Prices were historically stored as strings and summed with leading-integer
// parsing, so "5.50" counts as 5. Numeric values truncate the same way.
// Unparseable values count as zero.
func wholeUnits(price interface{}) int64 {
	switch value := price.(type) {
	case string:
		return leadingInteger(value)
	case float64:
		return int64(value)
	case int64:
		return value
	case int32:
		return int64(value)
	case int:
		return int64(value)
	default:
		return 0
	}
}

// leadingInteger parses the longest leading decimal-integer prefix of the
// trimmed string: "15", "5.50", "12abc" yield 15, 5, 12. No prefix yields 0.
func leadingInteger(value string) int64 {
	trimmed := strings.TrimSpace(value)

	start := 0
	if start < len(trimmed) && (trimmed[start] == '+' || trimmed[start] == '-') {
		start++
	}

	end := start
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}

	parsed, err := strconv.ParseInt(trimmed[:end], 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
