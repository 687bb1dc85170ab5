package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logicmonitor/lm-rpc-sdk-go/model"
	"github.com/logicmonitor/lm-rpc-sdk-go/pkg/sdt"
	"github.com/logicmonitor/lm-rpc-sdk-go/pkg/timeseries"
	"github.com/logicmonitor/lm-rpc-sdk-go/utils"
	"github.com/logicmonitor/lm-rpc-sdk-go/validator"
)

func testCredentials() model.Credentials {
	return model.Credentials{Company: "acme", Username: "apiuser", Password: "secret"}
}

// envelope writes a status-200 RPC envelope around data.
func envelope(t *testing.T, w http.ResponseWriter, data string) {
	t.Helper()
	body, err := json.Marshal(utils.RPCResponse{Status: 200, Data: json.RawMessage(data)})
	require.NoError(t, err)
	_, _ = w.Write(body)
}

func newTestClient(t *testing.T, ts *httptest.Server) *LMRPCClient {
	t.Helper()
	lmrpc, err := NewLMRPCClient(context.Background(),
		WithCredentials(testCredentials()),
		WithURL(ts.URL),
		WithHTTPClient(ts.Client()),
	)
	require.NoError(t, err)
	return lmrpc
}

func TestNewLMRPCClient(t *testing.T) {
	lmrpc, err := NewLMRPCClient(context.Background(), WithCredentials(testCredentials()))
	require.NoError(t, err)
	assert.Equal(t, "https://acme.logicmonitor.com/santaba/rpc", lmrpc.url)
	assert.Equal(t, "secret", lmrpc.authParams.Get("p"))
}

func TestNewLMRPCClientMissingCredentials(t *testing.T) {
	for _, key := range []string{
		"LM_COMPANY", "LOGICMONITOR_COMPANY",
		"LM_USERNAME", "LOGICMONITOR_USERNAME",
		"LM_PASSWORD", "LOGICMONITOR_PASSWORD",
	} {
		os.Unsetenv(key)
	}

	_, err := NewLMRPCClient(context.Background())
	require.Error(t, err)

	var validationErr *validator.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestRPCGeneric(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getSomething", r.URL.Path)
		assert.Equal(t, "acme", r.URL.Query().Get("c"))
		envelope(t, w, `{"anything": true}`)
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	raw, err := lmrpc.RPC(context.Background(), "getSomething", url.Values{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"anything": true}`, string(raw))
}

func TestRPCGenericAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(utils.RPCResponse{Status: 403, Errmsg: "permission denied"})
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	_, err := lmrpc.RPC(context.Background(), "getHosts", url.Values{})
	require.Error(t, err)

	var apiErr *model.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, "permission denied", apiErr.Message)
}

func TestGetHosts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getHosts", r.URL.Path)
		assert.Equal(t, "4", r.URL.Query().Get("hostGroupId"))
		envelope(t, w, `{"hosts": [{"id": 1, "hostName": "web01.example.com", "displayedAs": "web01"}]}`)
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	hosts, err := lmrpc.GetHosts(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, int64(1), hosts[0].ID)
	assert.Equal(t, "web01", hosts[0].DisplayedAs)
}

func TestGetHost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getHost", r.URL.Path)
		assert.Equal(t, "web01", r.URL.Query().Get("displayedAs"))
		envelope(t, w, `{"id": 7, "displayedAs": "web01"}`)
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	host, err := lmrpc.GetHost(context.Background(), "web01")
	require.NoError(t, err)
	assert.Equal(t, int64(7), host.ID)
}

func TestGetAlerts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getAlerts", r.URL.Path)
		assert.Equal(t, "web01", r.URL.Query().Get("host"))
		assert.Equal(t, "error", r.URL.Query().Get("level"))
		envelope(t, w, `{"alerts": [{"id": 11, "host": "web01", "levelStr": "error"}], "total": 1}`)
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	result, err := lmrpc.GetAlerts(context.Background(), model.AlertFilter{Host: "web01", Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, int64(11), result.Alerts[0].ID)
}

func TestGetData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getData", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "web01", query.Get("host"))
		assert.Equal(t, "CPU", query.Get("dataSource"))
		assert.Equal(t, "busy", query.Get("dataPoint0"))
		assert.Equal(t, "idle", query.Get("dataPoint1"))
		assert.Equal(t, "acme", query.Get("c"))
		assert.Equal(t, "apiuser", query.Get("u"))
		assert.Equal(t, "secret", query.Get("p"))
		envelope(t, w, `{
			"dataPoints": ["busy", "idle"],
			"values": {"CPU-0": [[1000, "t1", 10, 90], [1060, "t2", 20, 80]]},
			"tzoffset": 0
		}`)
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	result, err := lmrpc.GetData(context.Background(), model.DataRequest{
		Host:       "web01",
		DataSource: "CPU",
		DataPoints: []string{"busy", "idle"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"CPU-0"}, result.InstanceNames())

	points := result.Instances["CPU-0"]
	require.Len(t, points, 2)
	assert.Equal(t, int64(1000), points[0].Epoch)
	assert.Equal(t, "t1", points[0].Timestamp)
	require.NotNil(t, points[0].Values["busy"])
	assert.Equal(t, float64(10), *points[0].Values["busy"])
	require.NotNil(t, points[1].Values["idle"])
	assert.Equal(t, float64(80), *points[1].Values["idle"])
}

func TestGetDataValidation(t *testing.T) {
	dispatched := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dispatched = true
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	_, err := lmrpc.GetData(context.Background(), model.DataRequest{Host: "web01"})
	require.Error(t, err)

	var validationErr *validator.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.False(t, dispatched)
}

func TestGetDataSchemaMismatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope(t, w, `{
			"dataPoints": ["busy", "idle"],
			"values": {"CPU-0": [[1000, "t1", 10]]}
		}`)
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	_, err := lmrpc.GetData(context.Background(), model.DataRequest{Host: "web01", DataSource: "CPU"})
	require.Error(t, err)

	var mismatch *timeseries.SchemaMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

func TestSetSDT(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/setHostSDT", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "web01", query.Get("host"))
		assert.Equal(t, "1", query.Get("type"))
		assert.Equal(t, "0", query.Get("month"))
		assert.Equal(t, "13", query.Get("endHour"))
		assert.Equal(t, "50", query.Get("endMinute"))
		envelope(t, w, `{"id": 99, "type": 1, "comment": "maintenance"}`)
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	start := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 5, 13, 50, 0, 0, time.UTC)
	window, err := lmrpc.SetSDT(context.Background(), sdt.KindHost, "web01", start, end, "maintenance")
	require.NoError(t, err)
	assert.Equal(t, int64(99), window.ID)
}

func TestSetSDTUnsupportedEntity(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be dispatched")
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	start := time.Now().UTC()
	_, err := lmrpc.SetSDT(context.Background(), sdt.KindHostGroup, "notanumber", start, start.Add(time.Hour), "")
	require.Error(t, err)

	var entityErr *sdt.UnsupportedEntityError
	assert.True(t, errors.As(err, &entityErr))
}

func TestSetQuickSDT(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/setAgentSDT", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("agentId"))
		envelope(t, w, `{"id": 100, "type": 1}`)
	}))
	defer ts.Close()

	lmrpc := newTestClient(t, ts)
	window, err := lmrpc.SetQuickSDT(context.Background(), sdt.KindAgent, "12", sdt.Duration{Minutes: 30}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(100), window.ID)

	// two duration units is rejected before any dispatch
	_, err = lmrpc.SetQuickSDT(context.Background(), sdt.KindAgent, "12", sdt.Duration{Minutes: 30, Hours: 1}, "")
	assert.Error(t, err)
}

func TestWithRateLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope(t, w, `[]`)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lmrpc, err := NewLMRPCClient(ctx,
		WithCredentials(testCredentials()),
		WithURL(ts.URL),
		WithHTTPClient(ts.Client()),
		WithRateLimit(1),
	)
	require.NoError(t, err)

	_, err = lmrpc.GetAccounts(ctx)
	require.NoError(t, err)

	// second call in the same minute exceeds the quota
	_, err = lmrpc.GetAccounts(ctx)
	assert.Error(t, err)
}
