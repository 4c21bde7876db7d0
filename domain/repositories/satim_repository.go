package repositories

import "context"

// SatimGatewayRepository performs one GET against a SATIM endpoint with data as
// the query string and returns the decoded json object. It never retries.
type SatimGatewayRepository interface {
	Call(ctx context.Context, endpoint string, data map[string]interface{}) (map[string]interface{}, error)
}
