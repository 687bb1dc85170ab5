package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/logicmonitor/lm-rpc-sdk-go/model"
)

// RPCResponse is the envelope every RPC method returns regardless of
// endpoint. Data is left undecoded; its shape is method-specific.
type RPCResponse struct {
	Status    int             `json:"status"`
	Errmsg    string          `json:"errmsg"`
	Data      json.RawMessage `json:"data"`
	RequestID uuid.UUID       `json:"-"`
}

// ConvertHTTPToRPCResponse decodes an RPC response body into the common
// envelope. HTTP-level failures and undecodable bodies surface as
// *model.TransportError; an envelope status other than 200 surfaces as
// *model.APIError. Only on success is Data returned for further decoding.
func ConvertHTTPToRPCResponse(resp *http.Response) (*RPCResponse, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.TransportError{Op: "read response body", Err: err}
	}

	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.TransportError{
			Op:  "http request",
			Err: fmt.Errorf("Status Code: %d , Error Message: %s", resp.StatusCode, string(body[:])),
		}
	}

	rpcResponse := &RPCResponse{}
	if err := json.Unmarshal(body, rpcResponse); err != nil {
		return nil, &model.TransportError{
			Op:  "decode envelope",
			Err: fmt.Errorf("Invalid Response! , Status Code: %d , Error Message: %s", resp.StatusCode, err),
		}
	}

	requestID, _ := uuid.Parse(resp.Header.Get("x-request-id"))
	if rpcResponse.Status != http.StatusOK {
		return nil, &model.APIError{
			Status:    rpcResponse.Status,
			Message:   rpcResponse.Errmsg,
			RequestID: requestID,
		}
	}
	rpcResponse.RequestID = requestID
	return rpcResponse, nil
}
