// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package advert manages promotional listings and their status workflow.
package advert

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusAddToSlide is the distinguished status value that selects an
// advertisement for the home-page promotion slider.
//
// The status set is deliberately open: transitions are free-form $set-style
// writes and any string is a valid status. Only this value carries meaning
// to the system itself.
const StatusAddToSlide = "Add to Slide"

// Advertisement is a promotional listing owned by the Seller who requested it.
type Advertisement struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MedicineName string             `bson:"medicineName" json:"medicineName"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL     *string            `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`

	// AuthorEmail identifies the requesting seller (denormalized, unchecked).
	AuthorEmail string `bson:"authorEmail" json:"authorEmail"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
