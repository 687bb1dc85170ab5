package rpc

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/logicmonitor/lm-rpc-sdk-go/model"
)

type Option func(*LMRPCClient) error

// WithCredentials is used for passing the authentication triple if not
// set in environment variables.
func WithCredentials(creds model.Credentials) Option {
	return func(lmrpc *LMRPCClient) error {
		lmrpc.creds = creds
		return nil
	}
}

// WithURL overrides the RPC base URL derived from the company name.
func WithURL(url string) Option {
	return func(lmrpc *LMRPCClient) error {
		lmrpc.url = url
		return nil
	}
}

// WithHTTPClient replaces the default HTTP client. The caller keeps
// responsibility for its timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(lmrpc *LMRPCClient) error {
		lmrpc.client = httpClient
		return nil
	}
}

// WithRateLimit is used to limit the RPC request count per minute.
func WithRateLimit(requestCount int) Option {
	return func(lmrpc *LMRPCClient) error {
		lmrpc.rateLimitEnabled = true
		lmrpc.rateLimiterSetting.RequestCount = requestCount
		return nil
	}
}

// WithLogger enables request tracing. Composed URIs are logged at debug
// level with the password parameter redacted.
func WithLogger(logger zerolog.Logger) Option {
	return func(lmrpc *LMRPCClient) error {
		lmrpc.logger = logger
		return nil
	}
}
