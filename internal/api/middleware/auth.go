package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"

	// HeaderUserID carries the authenticated staff member's id, set by the
	// gateway in front of this service.
	HeaderUserID = "X-User-ID"
)

const msgMissingUserID = "인증 정보가 없습니다"

// Auth extracts the staff user id set by the gateway and stores it in the
// request context. Requests without a valid id are rejected.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user id stored by Auth.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
