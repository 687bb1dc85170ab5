package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"

	"github.com/logicmonitor/lm-rpc-sdk-go/model"
)

// GetHosts fetches the hosts of one host group.
func (lmrpc *LMRPCClient) GetHosts(ctx context.Context, hostGroupID int64) ([]model.Host, error) {
	params := url.Values{}
	params.Set("hostGroupId", strconv.FormatInt(hostGroupID, 10))
	raw, err := lmrpc.RPC(ctx, "getHosts", params)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Hosts []model.Host `json:"hosts"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decoding getHosts response: %w", err)
	}
	return payload.Hosts, nil
}

// GetHost fetches a single host by its display name.
func (lmrpc *LMRPCClient) GetHost(ctx context.Context, displayedAs string) (*model.Host, error) {
	params := url.Values{}
	params.Set("displayedAs", displayedAs)
	raw, err := lmrpc.RPC(ctx, "getHost", params)
	if err != nil {
		return nil, err
	}
	host := &model.Host{}
	if err := json.Unmarshal(raw, host); err != nil {
		return nil, fmt.Errorf("decoding getHost response: %w", err)
	}
	return host, nil
}

// GetHostGroups fetches all host groups of the account.
func (lmrpc *LMRPCClient) GetHostGroups(ctx context.Context) ([]model.HostGroup, error) {
	raw, err := lmrpc.RPC(ctx, "getHostGroups", url.Values{})
	if err != nil {
		return nil, err
	}
	var groups []model.HostGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("decoding getHostGroups response: %w", err)
	}
	return groups, nil
}

// GetAccounts fetches the user accounts of the portal.
func (lmrpc *LMRPCClient) GetAccounts(ctx context.Context) ([]model.Account, error) {
	raw, err := lmrpc.RPC(ctx, "getAccounts", url.Values{})
	if err != nil {
		return nil, err
	}
	var accounts []model.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("decoding getAccounts response: %w", err)
	}
	return accounts, nil
}

// GetAgents fetches the collector agents of the portal.
func (lmrpc *LMRPCClient) GetAgents(ctx context.Context) ([]model.Agent, error) {
	raw, err := lmrpc.RPC(ctx, "getAgents", url.Values{})
	if err != nil {
		return nil, err
	}
	var agents []model.Agent
	if err := json.Unmarshal(raw, &agents); err != nil {
		return nil, fmt.Errorf("decoding getAgents response: %w", err)
	}
	return agents, nil
}

// AlertsResult carries the alerts of one getAlerts call together with
// the total the service reports for the filter.
type AlertsResult struct {
	Alerts []model.Alert
	Total  int
}

// GetAlerts fetches alerts matching the filter.
func (lmrpc *LMRPCClient) GetAlerts(ctx context.Context, filter model.AlertFilter) (*AlertsResult, error) {
	params, err := query.Values(filter)
	if err != nil {
		return nil, fmt.Errorf("encoding getAlerts parameters: %w", err)
	}
	raw, err := lmrpc.RPC(ctx, "getAlerts", params)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Alerts []model.Alert `json:"alerts"`
		Total  int           `json:"total"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decoding getAlerts response: %w", err)
	}
	return &AlertsResult{Alerts: payload.Alerts, Total: payload.Total}, nil
}

// GetEscalationChains fetches the escalation chains of the portal. The
// wire method keeps the service's historical spelling.
func (lmrpc *LMRPCClient) GetEscalationChains(ctx context.Context) ([]model.EscalationChain, error) {
	raw, err := lmrpc.RPC(ctx, "getEscalatingChains", url.Values{})
	if err != nil {
		return nil, err
	}
	var chains []model.EscalationChain
	if err := json.Unmarshal(raw, &chains); err != nil {
		return nil, fmt.Errorf("decoding getEscalatingChains response: %w", err)
	}
	return chains, nil
}
