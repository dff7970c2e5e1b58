// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/Only-Gg/gih/internal/adapter"
	"github.com/Only-Gg/gih/internal/store"
)

// mapBackendError translates the adapter's transport error into the business
// error the rest of the client branches on.
func mapBackendError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid
	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrPageNotFound
	case errors.Is(err, adapter.ErrConflict):
		return store.ErrPageIDAlreadyExists
	}

	return err
}
