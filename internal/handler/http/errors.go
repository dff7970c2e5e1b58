// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while parsing the "Authorization" header of
// admin requests. The auth middleware matches them with [errors.Is] to pick
// the response status.
var (
	// ErrEmptyAuthorizationHeader means the request carried no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header was present but not in
	// the "Bearer <token>" shape, so no token value could be extracted.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme prefix was present but the token value
	// itself was an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
