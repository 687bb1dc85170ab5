// Package validator checks request shapes before any network call is
// made.
package validator

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/logicmonitor/lm-rpc-sdk-go/model"
)

// ValidationError aggregates every shape problem found in a request.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateCredentials checks the authentication triple.
func ValidateCredentials(creds model.Credentials) error {
	if err := creds.Validate(); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ValidateDataRequest checks a getData request: host is required, and
// exactly one of DataSource and DataSourceInstance must be set. Supplying
// both is rejected rather than resolved by precedence.
func ValidateDataRequest(req model.DataRequest) error {
	var err error
	if req.Host == "" {
		err = multierr.Append(err, fmt.Errorf("host is required"))
	}
	if req.DataSource == "" && req.DataSourceInstance == "" {
		err = multierr.Append(err, fmt.Errorf("one of dataSource or dataSourceInstance is required"))
	}
	if req.DataSource != "" && req.DataSourceInstance != "" {
		err = multierr.Append(err, fmt.Errorf("dataSource and dataSourceInstance are mutually exclusive"))
	}
	for i, name := range req.DataPoints {
		if name == "" {
			err = multierr.Append(err, fmt.Errorf("dataPoint%d must not be empty", i))
		}
	}
	if err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
