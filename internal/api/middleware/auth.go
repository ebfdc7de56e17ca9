// Package middleware carries the router-level HTTP middleware: caller
// identity extraction and request metrics.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/handlers"
	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

// Identity headers set by the API gateway after token verification.
// This service trusts them; it does not verify tokens itself.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type ctxKey int

const identityKey ctxKey = iota

// Identity is the authenticated caller as asserted by the gateway
type Identity struct {
	UserID int64
	Role   domain.Role
}

// Auth extracts the caller identity from the gateway headers and rejects
// requests without a valid one.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "missing or invalid user identity")
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		if !domain.ValidRole(role) {
			handlers.RespondError(w, http.StatusUnauthorized, "missing or invalid user role")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, Identity{UserID: userID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the caller identity set by Auth
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
