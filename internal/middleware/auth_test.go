package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lepetitglacon/moyenne-sub000/internal/model"
	"github.com/lepetitglacon/moyenne-sub000/pkg/jwt"
	"github.com/lepetitglacon/moyenne-sub000/pkg/testutil"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_AuthVerifier_Middleware(t *testing.T) {
	ctx := testutil.MockContext()
	cfg := xcontext.Configs(ctx).Auth
	verify := NewAuthVerifier().Middleware()

	engine := jwt.NewEngine[model.AccessToken](cfg.TokenSecret, cfg.AccessToken.Expiration)
	token, err := engine.Generate("42", model.AccessToken{ID: 42, Name: "alice"})
	require.NoError(t, err)

	// Bearer header.
	req := httptest.NewRequest(http.MethodGet, "/getMe", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	authedCtx, err := verify(ctx, req)
	require.NoError(t, err)
	require.Equal(t, int64(42), xcontext.RequestUserID(authedCtx))

	// Cookie fallback.
	req = httptest.NewRequest(http.MethodGet, "/getMe", nil)
	req.AddCookie(&http.Cookie{Name: cfg.AccessToken.Name, Value: token})

	authedCtx, err = verify(ctx, req)
	require.NoError(t, err)
	require.Equal(t, int64(42), xcontext.RequestUserID(authedCtx))

	// Missing and invalid tokens are rejected.
	req = httptest.NewRequest(http.MethodGet, "/getMe", nil)
	_, err = verify(ctx, req)
	require.Error(t, err)

	req = httptest.NewRequest(http.MethodGet, "/getMe", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	_, err = verify(ctx, req)
	require.Error(t, err)
}
