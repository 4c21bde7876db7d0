package helpers

import (
	"context"
	"fmt"

	"github.com/jakehl/goid"
)

type traceKey struct{}

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

// WithTraceId attaches a trace id to ctx unless one is already present.
func WithTraceId(ctx context.Context) context.Context {
	if TraceId(ctx) != "" {
		return ctx
	}
	return ContextWithTraceId(ctx, GetUUId())
}

func ContextWithTraceId(ctx context.Context, traceId string) context.Context {
	return context.WithValue(ctx, traceKey{}, traceId)
}

func TraceId(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

func IsStringSliceContains(stringSlice []string, searchString string) bool {
	for _, value := range stringSlice {
		if value == searchString {
			return true
		}
	}
	return false
}

// MaskSecrets copies a query map, hiding the values of the given keys.
func MaskSecrets(data map[string]interface{}, keys ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		if IsStringSliceContains(keys, k) {
			out[k] = "******"
			continue
		}
		out[k] = v
	}
	return out
}
