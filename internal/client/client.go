package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/rs/zerolog"

	"github.com/logicmonitor/lm-rpc-sdk-go/model"
	rateLimiter "github.com/logicmonitor/lm-rpc-sdk-go/pkg/ratelimiter"
	"github.com/logicmonitor/lm-rpc-sdk-go/utils"
)

const defaultTimeoutSeconds = 10

// Client returns the SDK's default HTTP client: TLS 1.2 minimum and the
// fixed request timeout (overridable through LM_RPC_TIMEOUT, in seconds).
func Client() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: false, MinVersion: tls.VersionTLS12}
	timeout := time.Duration(utils.GetEnvAsInt("LM_RPC_TIMEOUT", defaultTimeoutSeconds)) * time.Second
	return &http.Client{Transport: transport, Timeout: timeout}
}

type RequestConfig struct {
	Client      *http.Client
	RateLimiter rateLimiter.RateLimiter
	URL         string
	Method      string
	Params      url.Values
	Auth        url.Values
	Logger      zerolog.Logger
}

// BuildRequestURL appends the RPC method as a path segment on the base URL
// and merges caller parameters with the authentication triple. Auth is
// merged after caller parameters and wins on key collision, so a stray
// caller-supplied "c"/"u"/"p" can never clobber authentication. Encode
// sorts keys, keeping the output stable for identical inputs.
func BuildRequestURL(base, method string, params, auth url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	u.Path = path.Join(u.Path, method)

	merged := url.Values{}
	for key, values := range params {
		for _, value := range values {
			merged.Add(key, value)
		}
	}
	for key, values := range auth {
		merged[key] = append([]string(nil), values...)
	}
	u.RawQuery = merged.Encode()
	return u.String(), nil
}

// RedactSecret replaces the password query parameter's value in a composed
// request URL. Used before the URL reaches any log line.
func RedactSecret(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	q := u.Query()
	if q.Has("p") {
		q.Set("p", "***")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// MakeRequest performs one RPC round trip and decodes the envelope.
func MakeRequest(ctx context.Context, reqConfig RequestConfig) (*utils.RPCResponse, error) {
	if len(reqConfig.Auth) == 0 {
		return nil, fmt.Errorf("missing authentication parameters")
	}

	fullURL, err := BuildRequestURL(reqConfig.URL, reqConfig.Method, reqConfig.Params, reqConfig.Auth)
	if err != nil {
		return nil, &model.TransportError{Op: "build request url", Err: err}
	}

	reqConfig.Logger.Debug().
		Str("method", reqConfig.Method).
		Str("url", RedactSecret(fullURL)).
		Msg("dispatching RPC request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("User-Agent", utils.BuildUserAgent())

	if reqConfig.RateLimiter != nil {
		if acquire, err := reqConfig.RateLimiter.Acquire(); !acquire {
			return nil, err
		}
	}

	httpResp, err := reqConfig.Client.Do(req)
	if err != nil {
		return nil, &model.TransportError{Op: "http get", Err: err}
	}
	return utils.ConvertHTTPToRPCResponse(httpResp)
}
