package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lepetitglacon/moyenne-sub000/internal/model"
	"github.com/lepetitglacon/moyenne-sub000/pkg/errorx"
	"github.com/lepetitglacon/moyenne-sub000/pkg/jwt"
	"github.com/lepetitglacon/moyenne-sub000/pkg/router"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

type AuthVerifier struct{}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

// Middleware verifies the access token from the Authorization header or
// the token cookie and records the caller's user id in the context.
func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		token := ""
		if authorization := r.Header.Get("Authorization"); authorization != "" {
			token = strings.TrimPrefix(authorization, "Bearer ")
		} else {
			cfg := xcontext.Configs(ctx).Auth
			if cookie, err := r.Cookie(cfg.AccessToken.Name); err == nil {
				token = cookie.Value
			}
		}

		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		cfg := xcontext.Configs(ctx).Auth
		engine := jwt.NewEngine[model.AccessToken](cfg.TokenSecret, cfg.AccessToken.Expiration)
		accessToken, err := engine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid or expired access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}
