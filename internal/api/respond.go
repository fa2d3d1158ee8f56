package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/auth"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	writeJSON(w, he.Code, map[string]string{"error": he.Message})
}

// toHTTPError maps engine errors onto HTTP status codes.
func toHTTPError(err error) *apperr.HTTPError {
	var storageErr *apperr.StorageError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return apperr.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return apperr.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrInvalidDateRange),
		errors.Is(err, apperr.ErrCapacityExceeded),
		errors.Is(err, apperr.ErrInvalidInput):
		return apperr.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrRoomUnavailable),
		errors.Is(err, apperr.ErrNotEditable),
		errors.Is(err, apperr.ErrNotCancellable),
		errors.Is(err, apperr.ErrRoomHasBookings):
		return apperr.NewHTTPError(http.StatusConflict, err.Error())
	case errors.As(err, &storageErr):
		return apperr.NewHTTPError(http.StatusInternalServerError, "storage unavailable")
	default:
		return apperr.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// principal pulls the caller identity set by the auth middleware. Writes
// a 401 and returns false when the request carries none.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return p, ok
}
