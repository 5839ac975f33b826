// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It hides the router's parameter extraction and body decoding behind small
helpers that return [apperr.AppError] values.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/biolink/internal/platform/apperr"
	"github.com/taibuivan/biolink/internal/platform/ctxutil"
	"github.com/taibuivan/biolink/internal/platform/validate"
)

// maxBodyBytes caps JSON bodies. Profiles are small documents.
const maxBodyBytes = 64 << 10

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter as a non-negative integer.

Returns:
  - int: The parsed value
  - error: VALIDATION_ERROR when the segment is not a number
*/
func IntParam(request *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil || value < 0 {
		return 0, validate.RequiredError(name, "Must be a number")
	}
	return value, nil
}

/*
RequiredIdentity returns the identity resolved from the session pointer.

Returns:
  - string: The signed-in identity
  - error: apperr.NotFound when there is no resolvable session
*/
func RequiredIdentity(request *http.Request) (string, error) {
	identity := ctxutil.GetIdentity(request.Context())
	if identity == "" {
		return "", apperr.NotFoundMessage("Not signed in")
	}
	return identity, nil
}
