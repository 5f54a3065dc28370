// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cart manages purchase-intent entries keyed by medicine name.
package cart

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is one medicine placed in a cart.
//
// # Dedup Scope
//
// Entries are deduplicated by medicine name across ALL carts, not per owner:
// the carts collection carries a unique index on "name", so once any buyer
// holds a medicine nobody else can add it. This preserves the inherited
// single-tenant behavior; see DESIGN.md for the decision record.
type Entry struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`

	// Name is the medicine name, globally unique across carts.
	Name string `bson:"name" json:"name"`

	// Email identifies the buyer who owns this entry.
	Email string `bson:"email" json:"email"`

	Company  string  `bson:"company,omitempty" json:"company,omitempty"`
	ImageURL *string `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	Price    float64 `bson:"price" json:"price"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
