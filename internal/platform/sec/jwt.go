// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and session-token management.
//
// # Architecture
//
// This package isolates security-sensitive code (token signing and
// verification) from the domain logic. It acts as an Infrastructure service
// injected into the transport layer via the [middleware.TokenVerifier]
// interface.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the payload embedded inside a signed session token.
//
// # Trust Model
//
// A token that verifies is trusted verbatim as the caller's identity; no
// freshness check beyond the expiry is performed, and no store lookup happens
// at verification time. Role checks are the RoleGuard's job and always read
// the persisted user record.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email identifies the account. It is the only claim the rest of the
	// system relies on.
	Email string `json:"email"`
}

// TokenCodec signs and verifies opaque session tokens using HS256 with a
// server-held secret.
//
// # Expiry
//
// The original behavior issued tokens without any expiry, leaving them valid
// until the secret rotated. The codec sets an 'exp' claim from the configured
// TTL instead — a deliberate hardening change, not an accidental drift.
type TokenCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenCodec creates a new [TokenCodec].
func NewTokenCodec(secret, issuer string, timeToLive time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    timeToLive,
	}
}

// TTL returns the configured token lifetime. The session cookie's MaxAge is
// derived from the same value so cookie and token expire together.
func (codec *TokenCodec) TTL() time.Duration {
	return codec.ttl
}

// Sign encodes the identity into a signed opaque token string.
func (codec *TokenCodec) Sign(email string) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    codec.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(codec.ttl)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(codec.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and structure of a token string.
//
// It fails on a bad signature, malformed structure, or expiry. It does not
// itself express "missing token" — that distinction belongs to the session
// guard.
func (codec *TokenCodec) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return codec.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
