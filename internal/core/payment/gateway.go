// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/taibuivan/medira/internal/platform/apperr"
)

// Gateway creates card-payment intents with the upstream processor.
type Gateway interface {
	// CreateIntent registers a payment of amountMinor (smallest currency
	// unit) and returns the client secret the frontend confirms against.
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
}

// StripeGateway implements [Gateway] on the Stripe PaymentIntents API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway constructs a gateway with its own API client so the
// package-global stripe key is never touched.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (gateway *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.Context = ctx

	intent, err := gateway.api.PaymentIntents.New(params)
	if err != nil {
		return "", apperr.Gateway(err)
	}

	return intent.ClientSecret, nil
}
