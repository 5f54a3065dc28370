// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/medira/internal/platform/sec"
)

/*
TestTokenCodec_SignAndVerify verifies the happy-path roundtrip: a signed
token carries the email in both the custom claim and the subject.
*/
func TestTokenCodec_SignAndVerify(t *testing.T) {
	codec := sec.NewTokenCodec("test-secret", "medira.app", time.Hour)

	token, err := codec.Sign("buyer@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "buyer@example.com", claims.Subject)
	assert.Equal(t, "medira.app", claims.Issuer)
}

/*
TestTokenCodec_Verify_WrongSecret verifies that a token signed with a
different secret is rejected.
*/
func TestTokenCodec_Verify_WrongSecret(t *testing.T) {
	signer := sec.NewTokenCodec("secret-a", "medira.app", time.Hour)
	verifier := sec.NewTokenCodec("secret-b", "medira.app", time.Hour)

	token, err := signer.Sign("buyer@example.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenCodec_Verify_Tampered verifies that any modification of the token
string invalidates the signature.
*/
func TestTokenCodec_Verify_Tampered(t *testing.T) {
	codec := sec.NewTokenCodec("test-secret", "medira.app", time.Hour)

	token, err := codec.Sign("buyer@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	claims, err := codec.Verify(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenCodec_Verify_Expired verifies that a token past its TTL fails
verification.
*/
func TestTokenCodec_Verify_Expired(t *testing.T) {
	codec := sec.NewTokenCodec("test-secret", "medira.app", -time.Minute)

	token, err := codec.Sign("buyer@example.com")
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenCodec_Verify_Garbage verifies that a non-token string is rejected
rather than panicking.
*/
func TestTokenCodec_Verify_Garbage(t *testing.T) {
	codec := sec.NewTokenCodec("test-secret", "medira.app", time.Hour)

	claims, err := codec.Verify("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenCodec_TTL verifies the cookie layer reads back the configured
lifetime unchanged.
*/
func TestTokenCodec_TTL(t *testing.T) {
	codec := sec.NewTokenCodec("test-secret", "medira.app", 72*time.Hour)
	assert.Equal(t, 72*time.Hour, codec.TTL())
}
