// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package payment covers intent creation, the append-only payment ledger,
// and the admin/user revenue aggregates.
package payment

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is one completed checkout as reported by the frontend after the
// card flow succeeds. Records are append-only; nothing in the system ever
// mutates or deletes one.
type Payment struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`

	// Email identifies the paying buyer.
	Email string `bson:"email" json:"email"`

	// Price arrives from the client as either a number or a numeric string.
	// It is stored verbatim; aggregation normalizes on read.
	Price interface{} `bson:"price" json:"price"`

	TransactionID string   `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	MedicineNames []string `bson:"medicineNames,omitempty" json:"medicineNames,omitempty"`
	Date          string   `bson:"date,omitempty" json:"date,omitempty"`
}
