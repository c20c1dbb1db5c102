package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/boutique-dz/storefront-backend/internal/models"
)

type contextKey string

const (
	sessionTokenKey contextKey = "session_token"
	authSnapshotKey contextKey = "auth_snapshot"
)

// Headers set by the client and the upstream auth gateway. The backend never
// resolves sessions itself; it consumes the already-resolved snapshot.
const (
	HeaderSessionToken = "X-Session-Token"
	HeaderAuthSubject  = "X-Auth-Subject"
	HeaderCCPValidated = "X-CCP-Validated"
	HeaderIndependent  = "X-Independent"
)

// Session requires a session token identifying the caller's cart and stores
// it in the request context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(HeaderSessionToken)
		if token == "" {
			http.Error(w, "Bad request: session token required", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), sessionTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthSnapshot reads the authentication snapshot injected by the upstream
// auth provider and stores it in the request context. An empty subject means
// unauthenticated. Profile flags are only trusted when both are present;
// otherwise the profile is nil and gated payment options stay blocked.
func AuthSnapshot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := models.AuthSnapshot{}

		if subject := r.Header.Get(HeaderAuthSubject); subject != "" {
			snapshot.IsAuthenticated = true

			ccpRaw := r.Header.Get(HeaderCCPValidated)
			indepRaw := r.Header.Get(HeaderIndependent)
			if ccpRaw != "" && indepRaw != "" {
				ccp, ccpErr := strconv.ParseBool(ccpRaw)
				indep, indepErr := strconv.ParseBool(indepRaw)
				if ccpErr == nil && indepErr == nil {
					snapshot.Profile = &models.Profile{
						CCPValidated:  ccp,
						IsIndependent: indep,
					}
				}
			}
		}

		ctx := context.WithValue(r.Context(), authSnapshotKey, snapshot)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionTokenFrom returns the session token stored by Session.
func SessionTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey).(string)
	return token
}

// AuthSnapshotFrom returns the snapshot stored by AuthSnapshot. Absent means
// unauthenticated.
func AuthSnapshotFrom(ctx context.Context) models.AuthSnapshot {
	snapshot, _ := ctx.Value(authSnapshotKey).(models.AuthSnapshot)
	return snapshot
}
