// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package category manages the medicine catalogue's category taxonomy.
package category

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups medicines for storefront navigation.
//
// Medicines reference a category by its Name (denormalized, no referential
// integrity); the Slug is derived for URL use only.
type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Slug     string             `bson:"slug,omitempty" json:"slug,omitempty"`
	ImageURL *string            `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
}
