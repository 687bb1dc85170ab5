package model

// Thin record types for the entities the RPC API returns. These are plain
// containers populated from the decoded data payload; no behavior lives here.

type Host struct {
	ID           int64             `json:"id"`
	HostName     string            `json:"hostName"`
	DisplayedAs  string            `json:"displayedAs"`
	AgentID      int64             `json:"agentId"`
	Description  string            `json:"description"`
	AlertEnable  bool              `json:"alertEnable"`
	InSDT        bool              `json:"inSDT"`
	Status       int               `json:"status"`
	CreatedOn    int64             `json:"createdOn"`
	UpdatedOn    int64             `json:"updatedOn"`
	Properties   map[string]string `json:"properties"`
	FullPathInID string            `json:"fullPathInIds"`
}

type HostGroup struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullPath    string `json:"fullPath"`
	Description string `json:"description"`
	ParentID    int64  `json:"parentId"`
	AlertEnable bool   `json:"alertEnable"`
	InSDT       bool   `json:"inSDT"`
	CreatedOn   int64  `json:"createdOn"`
}

type Account struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Role      string `json:"role"`
}

type Agent struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Hostname    string `json:"hostname"`
	Version     string `json:"version"`
	Platform    string `json:"platform"`
	IsDown      bool   `json:"isDown"`
	Heartbeat   int64  `json:"heartbeatEpoch"`
}

type Alert struct {
	ID                 int64   `json:"id"`
	Type               string  `json:"type"`
	Level              string  `json:"levelStr"`
	Host               string  `json:"host"`
	HostID             int64   `json:"hostId"`
	HostGroups         string  `json:"hostGroups"`
	DataSource         string  `json:"dataSource"`
	DataSourceInstance string  `json:"dataSourceInstance"`
	DataPoint          string  `json:"dataPoint"`
	Value              float64 `json:"value"`
	Thresholds         string  `json:"thresholds"`
	StartOn            int64   `json:"startOn"`
	EndOn              int64   `json:"endOn"`
	Acked              bool    `json:"acked"`
	AckedBy            string  `json:"ackedBy"`
	AckComment         string  `json:"ackComment"`
	InSDT              bool    `json:"SDT"`
}

type EscalationChain struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	EnableThrottling bool   `json:"enableThrottling"`
	ThrottlingPeriod int    `json:"throttlingPeriod"`
	ThrottlingAlerts int    `json:"throttlingAlerts"`
	InAlerting       bool   `json:"inAlerting"`
}

// SDT is a scheduled-downtime window as echoed back by the set*SDT
// methods. Month fields are zero-based on the wire and are kept that way
// here; Wire month 0 is January.
type SDT struct {
	ID          int64  `json:"id"`
	Type        int    `json:"type"`
	SDTType     string `json:"sdtType"`
	Comment     string `json:"comment"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	EndYear     int    `json:"endYear"`
	EndMonth    int    `json:"endMonth"`
	EndDay      int    `json:"endDay"`
	EndHour     int    `json:"endHour"`
	EndMinute   int    `json:"endMinute"`
	Duration    int    `json:"duration"`
	IsEffective bool   `json:"isEffective"`
}
