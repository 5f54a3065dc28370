// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"time"

	"github.com/taibuivan/medira/internal/platform/constants"
)

// sessionCookie builds the session cookie with environment-dependent
// attributes.
//
// # Why the asymmetry matters
//
// In production the frontend is served from another origin, so the cookie
// must be SameSite=None + Secure or browsers will not attach it to API
// calls. In development everything runs on localhost over plain HTTP, where
// SameSite=None would be rejected without Secure — so dev uses Strict.
//
// Clearing MUST reuse the exact same attributes: browsers match cookies by
// (name, domain, path) plus security attributes, and a mismatched clear is
// silently ignored, leaving a ghost session behind.
func sessionCookie(value string, maxAge time.Duration, production bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     constants.SessionCookiePath,
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(maxAge.Seconds()),
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

// SetSessionCookie attaches a freshly signed session token to the response.
func SetSessionCookie(writer http.ResponseWriter, token string, timeToLive time.Duration, production bool) {
	http.SetCookie(writer, sessionCookie(token, timeToLive, production))
}

// ClearSessionCookie expires the session cookie immediately, using the same
// attributes that were used at set time.
func ClearSessionCookie(writer http.ResponseWriter, production bool) {
	cookie := sessionCookie("", 0, production)
	cookie.MaxAge = -1
	http.SetCookie(writer, cookie)
}
