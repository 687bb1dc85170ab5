package utils

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
)

var rpcURL = "https://%s.logicmonitor.com/santaba/rpc"

const REGEX_COMPANY_NAME = "^[a-zA-Z0-9_.\\-]+$"

// RPCURL forms the RPC base URL from the LM_COMPANY or
// LOGICMONITOR_COMPANY environment variable.
func RPCURL() (string, error) {
	company := os.Getenv("LM_COMPANY")
	if company == "" {
		if company = os.Getenv("LOGICMONITOR_COMPANY"); company == "" {
			return "", fmt.Errorf("Environment variable `LM_COMPANY` or `LOGICMONITOR_COMPANY` must be provided")
		}
	}
	return RPCURLForCompany(company)
}

// RPCURLForCompany forms the RPC base URL for an explicit company name.
func RPCURLForCompany(company string) (string, error) {
	match, _ := regexp.MatchString(REGEX_COMPANY_NAME, company)
	if !match {
		return "", fmt.Errorf("Invalid Company Name")
	}
	return fmt.Sprintf(rpcURL, company), nil
}

// AuthQueryParams returns the c/u/p authentication triple as query
// parameters.
func AuthQueryParams(company, username, password string) url.Values {
	return url.Values{
		"c": {company},
		"u": {username},
		"p": {password},
	}
}
