package errors

import "net/http"

var (
	ErrMissingInput = New(
		"MISSING_INPUT",
		"Query parameter 'input' is required",
		http.StatusBadRequest,
	)

	ErrMissingQuery = New(
		"MISSING_QUERY",
		"Query parameter 'query' is required",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"No place found for the given query",
		http.StatusNotFound,
	)

	ErrUpstreamError = New(
		"UPSTREAM_ERROR",
		"Upstream places service request failed",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
