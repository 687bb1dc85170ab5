package main

import (
	"context"
	"fmt"

	"github.com/bigkevmcd/go-configparser"

	"github.com/logicmonitor/lm-rpc-sdk-go/api/rpc"
	"github.com/logicmonitor/lm-rpc-sdk-go/model"
	"github.com/logicmonitor/lm-rpc-sdk-go/pkg/sdt"
)

// Schedules a one-hour downtime window for a host, reading the
// authentication triple from an ini file:
//
//	[logicmonitor]
//	company = acme
//	username = apiuser
//	password = secret
func main() {
	parser, err := configparser.NewConfigParserFromFile("config.ini")
	if err != nil {
		fmt.Println("Error in reading config.ini :", err)
		return
	}

	company, err := parser.Get("logicmonitor", "company")
	if err != nil {
		fmt.Println("Error in reading company :", err)
		return
	}
	username, err := parser.Get("logicmonitor", "username")
	if err != nil {
		fmt.Println("Error in reading username :", err)
		return
	}
	password, err := parser.Get("logicmonitor", "password")
	if err != nil {
		fmt.Println("Error in reading password :", err)
		return
	}

	lmrpc, err := rpc.NewLMRPCClient(context.Background(), rpc.WithCredentials(model.Credentials{
		Company:  company,
		Username: username,
		Password: password,
	}))
	if err != nil {
		fmt.Println("Error in initializing RPC client :", err)
		return
	}

	window, err := lmrpc.SetQuickSDT(context.Background(), sdt.KindHost, "web01", sdt.Duration{Hours: 1}, "patch window")
	if err != nil {
		fmt.Println("Error in scheduling downtime: ", err)
		return
	}
	fmt.Println("Scheduled downtime window", window.ID)
}
