package http

import (
	"context"
	"net/http"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/utils"
)

// authCookieName is the cookie that carries the signed JWT.
const authCookieName = "token"

// auth is an HTTP middleware that enforces cookie-based JWT authentication.
//
// It reads the "token" cookie, validates it via
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in two cases:
//   - The cookie is absent → [ErrNoAuthCookie].
//   - The cookie value fails validation (expired, wrong issuer, bad
//     signature, malformed) → [ErrInvalidToken].
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(authCookieName)
		if err != nil {
			log.Warn().Str("uri", r.RequestURI).Msg("request without auth cookie")
			renderError(w, ErrNoAuthCookie)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			renderError(w, ErrInvalidToken)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
