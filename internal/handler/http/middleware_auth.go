package http

import (
	"net/http"
	"strings"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/utils"
)

// withAuth rejects requests without a valid control API token with 401.
// On success the operator named in the token is stored in the request
// context under [utils.OperatorCtxKey].
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.withAuth").Send()
			writeError(w, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withAuth").Send()
			writeError(w, http.StatusUnauthorized, ErrInvalidAuthorizationHeader.Error())
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.SignKey, h.auth.Issuer)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withAuth").Msg("token rejected")
			writeError(w, http.StatusUnauthorized, ErrInvalidToken.Error())
			return
		}

		log.Debug().Str("func", "*Handler.withAuth").Str("operator", token.Operator).Msg("request authorized")
		next.ServeHTTP(w, r.WithContext(utils.WithOperator(r.Context(), token.Operator)))
	})
}
