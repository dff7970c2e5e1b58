// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the business rules of memory page submissions
// before they reach storage.
//
// The single entry point is the [Validator] interface: handlers and services
// inject an implementation and call Validate with the draft payload. The
// same implementation is shared by the server and the terminal client, so a
// submission rejected locally would have been rejected by the API as well.
package validators

import "context"

// Validator validates an arbitrary input value. Implementations may perform
// structural validation, semantic checks, and cross-field rules. The optional
// field names restrict validation to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
