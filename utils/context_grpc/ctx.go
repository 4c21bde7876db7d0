package context_grpc

import (
	"context"

	"satim-gateway/utils/helpers"

	"google.golang.org/grpc/metadata"
)

// TraceIdKey is the metadata key a host gRPC service receives trace ids on.
const TraceIdKey = "x-trace-id"

// WithTraceId keeps a trace id already on ctx, then tries incoming gRPC
// metadata, then generates a new one.
func WithTraceId(ctx context.Context) context.Context {
	if helpers.TraceId(ctx) != "" {
		return ctx
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(TraceIdKey); len(ids) > 0 && ids[0] != "" {
			return helpers.ContextWithTraceId(ctx, ids[0])
		}
	}
	return helpers.WithTraceId(ctx)
}
