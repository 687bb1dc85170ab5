package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/logicmonitor/lm-rpc-sdk-go/model"
	"github.com/logicmonitor/lm-rpc-sdk-go/pkg/sdt"
)

// SetSDT schedules a one-time downtime window for an entity. A numeric
// id works for every kind; a display name only for sdt.KindHost.
func (lmrpc *LMRPCClient) SetSDT(ctx context.Context, kind sdt.EntityKind, id string, start, end time.Time, comment string) (*model.SDT, error) {
	planned, err := sdt.Plan(kind, id, start, end, comment)
	if err != nil {
		return nil, err
	}
	return lmrpc.dispatchSDT(ctx, planned)
}

// SetQuickSDT schedules a downtime window opening now (UTC) and lasting
// one Duration; exactly one duration unit must be set.
func (lmrpc *LMRPCClient) SetQuickSDT(ctx context.Context, kind sdt.EntityKind, id string, d sdt.Duration, comment string) (*model.SDT, error) {
	planned, err := sdt.PlanStartingNow(kind, id, d, comment)
	if err != nil {
		return nil, err
	}
	return lmrpc.dispatchSDT(ctx, planned)
}

func (lmrpc *LMRPCClient) dispatchSDT(ctx context.Context, planned *sdt.Planned) (*model.SDT, error) {
	raw, err := lmrpc.RPC(ctx, planned.Method, planned.Params)
	if err != nil {
		return nil, err
	}
	window := &model.SDT{}
	if err := json.Unmarshal(raw, window); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", planned.Method, err)
	}
	return window, nil
}
