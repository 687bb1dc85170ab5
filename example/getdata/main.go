package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/logicmonitor/lm-rpc-sdk-go/api/rpc"
	"github.com/logicmonitor/lm-rpc-sdk-go/model"
)

// Fetches CPU samples for one host. Credentials come from LM_COMPANY,
// LM_USERNAME and LM_PASSWORD.
func main() {
	logger := zerolog.New(os.Stderr).Level(zerolog.DebugLevel).With().Timestamp().Logger()

	lmrpc, err := rpc.NewLMRPCClient(context.Background(), rpc.WithLogger(logger))
	if err != nil {
		fmt.Println("Error in initializing RPC client :", err)
		return
	}

	result, err := lmrpc.GetData(context.Background(), model.DataRequest{
		Host:       "web01",
		DataSource: "CPU",
		DataPoints: []string{"CPUBusyPercent", "CPUIdlePercent"},
	})
	if err != nil {
		fmt.Println("Error in fetching data: ", err)
		return
	}

	for _, instance := range result.InstanceNames() {
		for _, point := range result.Instances[instance] {
			fmt.Println(instance, point.Epoch, point.Timestamp, point.Values)
		}
	}
}
