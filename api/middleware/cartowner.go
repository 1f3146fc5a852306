package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/velora-labs/storefront-backend/api/responses"
	"github.com/velora-labs/storefront-backend/pkg/config"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
	"github.com/velora-labs/storefront-backend/pkg/logger"
)

const cartSessionCookie = "cart_session"

type cartSessionStore interface {
	Issue(ctx context.Context) (string, error)
	Validate(ctx context.Context, sessionID string) (bool, error)
	TTL() time.Duration
}

// CartOwner resolves the cart scope for the request and stores it in the
// context. In session mode a guest cookie identifies the cart; in user mode
// the authenticated user id does, and Auth must run first.
func CartOwner(cfg config.CartConfig, sessions cartSessionStore, logg *logger.Logger) func(http.Handler) http.Handler {
	mode := cfg.Mode()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch mode {
			case enums.CartOwnerModeUser:
				userID := UserIDFromContext(r.Context())
				if userID == "" {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
					return
				}
				ctx := WithCartOwnerKey(r.Context(), "user:"+userID)
				next.ServeHTTP(w, r.WithContext(ctx))

			default:
				sessionID, err := resolveGuestSession(r, sessions)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart session"))
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cartSessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(sessions.TTL() / time.Second),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				ctx := WithCartOwnerKey(r.Context(), "session:"+sessionID)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

// resolveGuestSession reuses a valid cookie session or issues a fresh one.
// An expired or unknown session silently becomes a new empty cart.
func resolveGuestSession(r *http.Request, sessions cartSessionStore) (string, error) {
	if cookie, err := r.Cookie(cartSessionCookie); err == nil && cookie.Value != "" {
		ok, err := sessions.Validate(r.Context(), cookie.Value)
		if err != nil {
			return "", err
		}
		if ok {
			return cookie.Value, nil
		}
	}
	return sessions.Issue(r.Context())
}
