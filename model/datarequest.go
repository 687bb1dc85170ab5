package model

// DataRequest describes a getData call. The url tags drive the
// query-string encoding; DataPoints uses numbered keys so the wire
// parameters come out as dataPoint0, dataPoint1, ...
type DataRequest struct {
	Host               string   `url:"host"`
	DataSource         string   `url:"dataSource,omitempty"`
	DataSourceInstance string   `url:"dataSourceInstance,omitempty"`
	Start              int64    `url:"start,omitempty"`
	End                int64    `url:"end,omitempty"`
	Aggregate          string   `url:"aggregate,omitempty"`
	Period             float64  `url:"period,omitempty"`
	DataPoints         []string `url:"dataPoint,omitempty,numbered"`
}

// AlertFilter narrows a getAlerts call. Zero values are omitted from the
// request so an empty filter returns all alerts.
type AlertFilter struct {
	Host        string `url:"host,omitempty"`
	HostGroupID int64  `url:"hostGroupId,omitempty"`
	DataSource  string `url:"dataSource,omitempty"`
	Level       string `url:"level,omitempty"`
	Acked       string `url:"ackFilter,omitempty"`
	Start       int64  `url:"start,omitempty"`
	End         int64  `url:"end,omitempty"`
}
