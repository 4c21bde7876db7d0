package satim_service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"satim-gateway/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestRepoImpl_Call(t *testing.T) {
	var got *http.Request
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"orderId":"ABC123","formUrl":"https://test.satim.dz/form","errorCode":0}`))
	})

	repo := NewRepoImpl(srv.URL+"/payment/rest/", time.Second, zap.NewNop())
	resp, err := repo.Call(context.Background(), "/register.do", map[string]interface{}{
		"userName":    "test_username",
		"password":    "test_password",
		"amount":      int64(10050),
		"failUrl":     "",
		"description": nil,
	})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/payment/rest/register.do", got.URL.Path)
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	q := got.URL.Query()
	assert.Equal(t, "test_username", q.Get("userName"))
	assert.Equal(t, "test_password", q.Get("password"))
	assert.Equal(t, "10050", q.Get("amount"))
	assert.NotContains(t, q, "failUrl")
	assert.NotContains(t, q, "description")

	assert.Equal(t, "ABC123", resp["orderId"])
	assert.Equal(t, json.Number("0"), resp["errorCode"])
}

func TestRepoImpl_CallErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		message string
		status  int
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			message: "Server error: Internal Server Error (500).",
			status:  500,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			message: "Server error: Not Found (404).",
			status:  404,
		},
		{
			name: "redirect is not followed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "https://elsewhere.example.com/", http.StatusFound)
			},
			message: "Server error: Found (302).",
			status:  302,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>maintenance</html>`))
			},
			message: "Invalid response body from SATIM.",
			status:  200,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.handler)
			_, err := NewRepoImpl(srv.URL, time.Second, nil).Call(context.Background(), "confirmOrder.do", nil)
			require.Error(t, err)
			assert.True(t, errors.IsGatewayUnavailable(err))

			var gwErr *errors.GatewayUnavailableError
			require.ErrorAs(t, err, &gwErr)
			assert.Equal(t, tt.message, gwErr.Message)
			assert.Equal(t, tt.status, gwErr.StatusCode)
		})
	}
}

func TestRepoImpl_CallEmptyBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})
	resp, err := NewRepoImpl(srv.URL, time.Second, nil).Call(context.Background(), "refund.do", nil)
	require.NoError(t, err)
	assert.Empty(t, resp)
	assert.NotNil(t, resp)
}

func TestRepoImpl_CallConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	uri := srv.URL
	srv.Close()

	_, err := NewRepoImpl(uri, time.Second, nil).Call(context.Background(), "register.do", nil)
	require.Error(t, err)
	assert.True(t, errors.IsGatewayUnavailable(err))

	var gwErr *errors.GatewayUnavailableError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, 0, gwErr.StatusCode)
	assert.NotNil(t, gwErr.Unwrap())
}

func TestRepoImpl_CallWithoutUrl(t *testing.T) {
	_, err := NewRepoImpl(" ", time.Second, nil).Call(context.Background(), "register.do", nil)
	assert.ErrorIs(t, err, errors.ErrApiUrlNotConfigured)
	assert.True(t, errors.IsConfiguration(err))
}

func TestQuery(t *testing.T) {
	q := query(map[string]interface{}{
		"orderId":  "ORDER123",
		"amount":   int64(99999),
		"language": "EN",
		"failUrl":  "",
		"udf":      nil,
	})
	assert.Equal(t, "amount=99999&language=EN&orderId=ORDER123", q.Encode())
}
