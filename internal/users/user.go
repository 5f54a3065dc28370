// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package users implements the user directory of the Medira marketplace.
//
// # Architecture
//
// Accounts are created on first successful login (idempotent get-or-create),
// mutated only via explicit role updates, and never deleted. Identity arrives
// pre-verified from the frontend identity provider, so there is no password
// material anywhere in this package.
package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role classifies a user's privilege level.
//
// # Usage
//
// Used by [middleware.RequireRole] to enforce access control on API endpoints.
// Guard checks compare by exact string match: there is no hierarchy, and an
// account with no role holds no privileges — "no role" is NOT a synonym for
// Buyer.
type Role string

const (
	RoleAdmin  Role = "Admin"  // Manages users, roles, advertisements, and sales reports.
	RoleSeller Role = "Seller" // Can list medicines and run advertisements.
	RoleBuyer  Role = "Buyer"  // Default shopping role.
)

// User represents a registered member of the marketplace.
//
// # Rules
//   - Email is the unique business key (enforced by a unique index).
//   - Role may be absent: first login stores whatever the caller supplied,
//     including nothing. Later role checks treat absence as "no privileges".
//   - Profile attributes are denormalized and owned by the frontend.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL *string            `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     Role               `bson:"role,omitempty" json:"role,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
