// Package timeseries turns the rectangular getData payload (parallel
// arrays of timestamps, datapoints and instances) into per-instance,
// per-timestamp records.
package timeseries

import (
	"encoding/json"
	"fmt"

	"github.com/logicmonitor/lm-rpc-sdk-go/model"
)

// Rows carry [epoch, formattedTime, v0, v1, ...].
const leadingFields = 2

// Data is the raw shape of a getData response payload.
type Data struct {
	DataPoints []string           `json:"dataPoints"`
	Values     map[string][][]any `json:"values"`
	TZOffset   int                `json:"tzoffset"`
}

// ParseData decodes the data payload of a getData response.
func ParseData(raw json.RawMessage) (*Data, error) {
	data := &Data{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("timeseries: decoding getData payload: %w", err)
	}
	return data, nil
}

// SchemaMismatchError reports a sample row whose trailing-value count
// does not match the declared datapoint count. Rows are never truncated
// or padded to fit.
type SchemaMismatchError struct {
	Instance string
	Row      int
	Want     int
	Got      int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("timeseries: instance %q row %d carries %d values for %d declared datapoints", e.Instance, e.Row, e.Got, e.Want)
}

// Normalize zips each sample row's trailing values positionally against
// the declared datapoint names. Within an instance the row order is
// preserved as returned by the service; the grouping of instances
// themselves carries no order.
func Normalize(dataPoints []string, values map[string][][]any) (map[string][]model.TimeSeriesPoint, error) {
	normalized := make(map[string][]model.TimeSeriesPoint, len(values))
	for instance, rows := range values {
		points := make([]model.TimeSeriesPoint, 0, len(rows))
		for i, row := range rows {
			got := len(row) - leadingFields
			if got < 0 {
				got = 0
			}
			if got != len(dataPoints) || len(row) < leadingFields {
				return nil, &SchemaMismatchError{
					Instance: instance,
					Row:      i,
					Want:     len(dataPoints),
					Got:      got,
				}
			}

			epoch, ok := asEpoch(row[0])
			if !ok {
				return nil, fmt.Errorf("timeseries: instance %q row %d: epoch field is %T, want number", instance, i, row[0])
			}
			timestamp, ok := row[1].(string)
			if !ok {
				return nil, fmt.Errorf("timeseries: instance %q row %d: formatted time field is %T, want string", instance, i, row[1])
			}

			sampleValues := make(map[string]*float64, len(dataPoints))
			for j, name := range dataPoints {
				raw := row[leadingFields+j]
				if raw == nil {
					sampleValues[name] = nil
					continue
				}
				value, ok := raw.(float64)
				if !ok {
					return nil, fmt.Errorf("timeseries: instance %q row %d: datapoint %q is %T, want number or null", instance, i, name, raw)
				}
				sampleValues[name] = &value
			}

			points = append(points, model.TimeSeriesPoint{
				Epoch:     epoch,
				Timestamp: timestamp,
				Values:    sampleValues,
			})
		}
		normalized[instance] = points
	}
	return normalized, nil
}

func asEpoch(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}
