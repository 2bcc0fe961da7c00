package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrOriginRequired = New(
		"ORIGIN_REQUIRED",
		"Origin city or origin coordinates must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidHubKind = New(
		"INVALID_HUB_KIND",
		"Invalid transport hub kind",
		http.StatusBadRequest,
	)

	ErrInvalidRegion = New(
		"INVALID_REGION",
		"Invalid destination region",
		http.StatusBadRequest,
	)

	ErrDestinationNotFound = New(
		"DESTINATION_NOT_FOUND",
		"Destination not found",
		http.StatusNotFound,
	)

	ErrHubCatalogEmpty = New(
		"HUB_CATALOG_EMPTY",
		"Transport hub catalog is empty",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
