package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-brand-api/middlewares"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/testutil"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// newRouter mounts one handler behind the same auth and role gate the real
// router uses.
func newRouter(env *testutil.Env, method, path string, action policy.Action, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, path, middlewares.AuthMiddleware(env.Services.Auth), middlewares.RequireAction(action), handler)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		switch p := payload.(type) {
		case string:
			buf.WriteString(p)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(p))
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func decodeData(t *testing.T, resp envelope, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, dst))
}
