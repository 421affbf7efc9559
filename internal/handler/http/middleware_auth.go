package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-safe-share/internal/app"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// auth verifies the bearer token and stores its subject in the request
// context under [utils.UserIDCtxKey]. Missing, malformed, expired and
// badly signed tokens are all answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Err(err).Msg("token expired")
			} else {
				log.Err(err).Msg("error occurred during parsing token")
			}
			unauthorized(w)
			return
		}

		ctx := utils.WithUserID(r.Context(), token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="go-safe-share"`)
	utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
}
