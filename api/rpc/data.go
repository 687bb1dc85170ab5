package rpc

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/go-querystring/query"
	"github.com/samber/lo"

	"github.com/logicmonitor/lm-rpc-sdk-go/model"
	"github.com/logicmonitor/lm-rpc-sdk-go/pkg/timeseries"
	"github.com/logicmonitor/lm-rpc-sdk-go/validator"
)

// DataResult is the normalized form of one getData response: per-instance
// ordered samples plus the timezone offset the service reported.
type DataResult struct {
	Instances map[string][]model.TimeSeriesPoint
	TZOffset  int
}

// InstanceNames returns the instance keys in sorted order. The service
// returns them unordered.
func (r *DataResult) InstanceNames() []string {
	names := lo.Keys(r.Instances)
	sort.Strings(names)
	return names
}

// GetData fetches time-series samples and normalizes them into
// per-instance, per-timestamp records. The request is validated before
// any network call; a sample row that does not match the declared
// datapoints fails the whole call with *timeseries.SchemaMismatchError.
func (lmrpc *LMRPCClient) GetData(ctx context.Context, req model.DataRequest) (*DataResult, error) {
	if err := validator.ValidateDataRequest(req); err != nil {
		return nil, err
	}

	params, err := query.Values(req)
	if err != nil {
		return nil, fmt.Errorf("encoding getData parameters: %w", err)
	}

	raw, err := lmrpc.RPC(ctx, "getData", params)
	if err != nil {
		return nil, err
	}

	data, err := timeseries.ParseData(raw)
	if err != nil {
		return nil, err
	}
	instances, err := timeseries.Normalize(data.DataPoints, data.Values)
	if err != nil {
		return nil, err
	}
	return &DataResult{Instances: instances, TZOffset: data.TZOffset}, nil
}
