// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package medicine manages the sellable catalogue of the marketplace.
package medicine

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medicine is a sellable listing owned by the Seller who created it.
//
// Ownership is a denormalized email field, not a foreign key — the store
// never validates that the referenced seller exists.
type Medicine struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	GenericName string             `bson:"genericName,omitempty" json:"genericName,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    *string            `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Discount    float64            `bson:"discount,omitempty" json:"discount,omitempty"`

	// AuthorEmail identifies the owning seller.
	AuthorEmail string `bson:"authorEmail" json:"authorEmail"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
