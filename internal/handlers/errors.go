package handlers

import (
	"errors"
	"net/http"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/selection"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/store"
)

// statusOf maps domain errors to HTTP status codes. Anything the domain
// does not classify is a 500.
func statusOf(err error) int {
	var (
		notFound      *store.NotFoundError
		invalidParent *store.InvalidParentError
		immutable     *store.ImmutableFieldError
		duplicate     *store.DuplicateLinkError
		validation    *store.ValidationError
		transition    *selection.InvalidTransitionError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalidParent), errors.As(err, &immutable):
		return http.StatusUnprocessableEntity
	case errors.As(err, &duplicate), errors.As(err, &transition):
		return http.StatusConflict
	case errors.As(err, &validation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
