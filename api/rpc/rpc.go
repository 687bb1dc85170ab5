// Package rpc is the public client for the legacy LogicMonitor HTTP-RPC
// API: method names as path segments, c/u/p query-parameter
// authentication, and a {status, errmsg, data} envelope on every
// response.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/logicmonitor/lm-rpc-sdk-go/internal/client"
	"github.com/logicmonitor/lm-rpc-sdk-go/model"
	rateLimiter "github.com/logicmonitor/lm-rpc-sdk-go/pkg/ratelimiter"
	"github.com/logicmonitor/lm-rpc-sdk-go/utils"
	"github.com/logicmonitor/lm-rpc-sdk-go/validator"
)

type LMRPCClient struct {
	client             *http.Client
	url                string
	creds              model.Credentials
	authParams         url.Values
	rateLimiterSetting rateLimiter.RateLimiterSetting
	rateLimitEnabled   bool
	rateLimiter        rateLimiter.RateLimiter
	logger             zerolog.Logger
}

// NewLMRPCClient initializes LMRPCClient. Credentials default to the
// environment; the base URL and auth parameters are computed here once
// and never mutated, so the client is safe for concurrent use.
func NewLMRPCClient(ctx context.Context, opts ...Option) (*LMRPCClient, error) {
	lmrpc := LMRPCClient{
		client: client.Client(),
		creds:  utils.CredentialsFromEnv(),
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(&lmrpc); err != nil {
			return nil, err
		}
	}

	if err := validator.ValidateCredentials(lmrpc.creds); err != nil {
		return nil, err
	}

	if lmrpc.url == "" {
		rpcURL, err := utils.RPCURLForCompany(lmrpc.creds.Company)
		if err != nil {
			return nil, fmt.Errorf("error in forming RPC URL: %v", err)
		}
		lmrpc.url = rpcURL
	}
	lmrpc.authParams = utils.AuthQueryParams(lmrpc.creds.Company, lmrpc.creds.Username, lmrpc.creds.Password)

	if lmrpc.rateLimitEnabled {
		rpcRateLimiter, err := rateLimiter.NewRPCRateLimiter(lmrpc.rateLimiterSetting)
		if err != nil {
			return nil, err
		}
		lmrpc.rateLimiter = rpcRateLimiter
		go lmrpc.rateLimiter.Run(ctx)
	} else {
		lmrpc.rateLimiter = &rateLimiter.NoopRateLimiter{}
	}

	return &lmrpc, nil
}

// RPC performs one round trip for an arbitrary method and returns the
// envelope's data payload verbatim. The typed operations are built on
// this; it is exported for methods the SDK has no wrapper for.
func (lmrpc *LMRPCClient) RPC(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	resp, err := client.MakeRequest(ctx, client.RequestConfig{
		Client:      lmrpc.client,
		RateLimiter: lmrpc.rateLimiter,
		URL:         lmrpc.url,
		Method:      method,
		Params:      params,
		Auth:        lmrpc.authParams,
		Logger:      lmrpc.logger,
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
