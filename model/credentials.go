package model

import "fmt"

// Credentials holds the authentication triple for the LogicMonitor RPC API.
// The fields are sent as the c/u/p query parameters on every request.
type Credentials struct {
	Company  string
	Username string
	Password string
}

// Validate checks that all three authentication fields are present.
func (c Credentials) Validate() error {
	if c.Company == "" {
		return fmt.Errorf("company name must not be empty")
	}
	if c.Username == "" {
		return fmt.Errorf("username must not be empty")
	}
	if c.Password == "" {
		return fmt.Errorf("password must not be empty")
	}
	return nil
}
