package model

import (
	"fmt"

	"github.com/google/uuid"
)

// TransportError reports a failure before the RPC envelope could be
// interpreted: a network error, a non-success HTTP status, or a response
// body that is not valid JSON.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is an RPC envelope that decoded cleanly but carries a status
// other than 200. Status and Message are supplied by the remote service.
type APIError struct {
	Status    int
	Message   string
	RequestID uuid.UUID
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rpc api error: status %d: %s", e.Status, e.Message)
}
