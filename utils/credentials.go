package utils

import (
	"os"

	"github.com/logicmonitor/lm-rpc-sdk-go/model"
)

// CredentialsFromEnv reads the authentication triple from the
// environment. Each field accepts an LM_ or LOGICMONITOR_ prefixed
// variable, the LM_ form winning when both are set.
func CredentialsFromEnv() model.Credentials {
	company := os.Getenv("LM_COMPANY")
	if company == "" {
		company = os.Getenv("LOGICMONITOR_COMPANY")
	}
	username := os.Getenv("LM_USERNAME")
	if username == "" {
		username = os.Getenv("LOGICMONITOR_USERNAME")
	}
	password := os.Getenv("LM_PASSWORD")
	if password == "" {
		password = os.Getenv("LOGICMONITOR_PASSWORD")
	}
	return model.Credentials{
		Company:  company,
		Username: username,
		Password: password,
	}
}
