package satim_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"satim-gateway/domain/repositories"
	"satim-gateway/errors"
	"satim-gateway/utils/context_grpc"
	"satim-gateway/utils/helpers"
	"satim-gateway/utils/logger"
	"satim-gateway/utils/metrics"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ repositories.SatimGatewayRepository = (*RepoImpl)(nil)

type RepoImpl struct {
	Uri    string
	Logger *zap.Logger
	client *http.Client
}

// NewRepoImpl builds the transport. TLS verification stays on and redirects
// are not followed, a 3xx is reported as a server error.
func NewRepoImpl(uri string, timeout time.Duration, lg *zap.Logger) *RepoImpl {
	return &RepoImpl{
		Uri:    uri,
		Logger: logger.OrNop(lg),
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (r *RepoImpl) endpoint(path string) (string, error) {
	if strings.TrimSpace(r.Uri) == "" {
		return "", errors.ErrApiUrlNotConfigured
	}
	return strings.TrimRight(r.Uri, "/") + "/" + strings.TrimLeft(path, "/"), nil
}

// query drops unset values; everything else is sent as its string form.
func query(data map[string]interface{}) url.Values {
	values := url.Values{}
	for key, value := range data {
		if value == nil {
			continue
		}
		s := cast.ToString(value)
		if s == "" {
			continue
		}
		values.Set(key, s)
	}
	return values
}

func (r *RepoImpl) Call(ctx context.Context, endpoint string, data map[string]interface{}) (response map[string]interface{}, err error) {
	uri, err := r.endpoint(endpoint)
	if err != nil {
		return nil, err
	}
	ctx = context_grpc.WithTraceId(ctx)
	logs := r.Logger.With(
		zap.String("trace-id", helpers.TraceId(ctx)),
		zap.String("uri", uri),
	)
	logs.With(zapcore.Field{
		Key:       "request",
		Type:      zapcore.ReflectType,
		Interface: helpers.MaskSecrets(data, "password"),
	}).Info("satim_request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.NewGatewayUnavailable(err.Error(), 0, err)
	}
	req.URL.RawQuery = query(data).Encode()
	req.Header.Add("Accept", `application/json`)

	started := time.Now()
	status := "error"
	defer func() {
		metrics.ObserveRequest(endpoint, status, time.Since(started).Seconds())
	}()

	resp, err := r.client.Do(req)
	if err != nil {
		logs.With(zap.Error(err)).Error("SATIM CONNECTION ERROR")
		return nil, errors.NewGatewayUnavailable(err.Error(), 0, err)
	}
	defer resp.Body.Close()

	responseByte, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewGatewayUnavailable(err.Error(), resp.StatusCode, err)
	}

	logs.With(
		zap.Int("status", resp.StatusCode),
		zap.String("response", string(responseByte)),
	).Info("http_request_data")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		status = fmt.Sprintf("http_%d", resp.StatusCode)
		logs.Error("SATIM SERVER ERROR: " + string(responseByte))
		return nil, errors.NewServerError(reason(resp), resp.StatusCode)
	}

	decoder := json.NewDecoder(bytes.NewReader(responseByte))
	decoder.UseNumber()
	if err = decoder.Decode(&response); err != nil {
		status = "invalid_body"
		logs.With(zap.Error(err)).Error("can not unmarshal response")
		return nil, errors.NewGatewayUnavailable("Invalid response body from SATIM.", resp.StatusCode, err)
	}
	if response == nil {
		response = map[string]interface{}{}
	}
	status = "ok"
	return response, nil
}

// reason strips the numeric prefix of resp.Status, "404 Not Found" -> "Not Found".
func reason(resp *http.Response) string {
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode))); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
