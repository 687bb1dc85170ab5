// Package sdt plans scheduled-downtime windows: it translates an entity
// kind, an identifier and a time range into the wire-format method name
// and parameter set the RPC API expects.
package sdt

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// EntityKind is the category of object a downtime window applies to.
// Each kind has its own wire method name and identifier key.
type EntityKind int

const (
	KindHost EntityKind = iota
	KindHostGroup
	KindHostDataSource
	KindDataSourceInstance
	KindHostDataSourceInstanceGroup
	KindAgent
)

// OneTimeRecurrence is the only recurrence type the RPC API supports
// through this planner.
const OneTimeRecurrence = 1

type kindSpec struct {
	name   string
	method string
	idKey  string
	// hosts may additionally be addressed by display name under this key
	nameKey string
}

var kindTable = map[EntityKind]kindSpec{
	KindHost:                        {name: "Host", method: "setHostSDT", idKey: "hostId", nameKey: "host"},
	KindHostGroup:                   {name: "HostGroup", method: "setHostGroupSDT", idKey: "hostGroupId"},
	KindHostDataSource:              {name: "HostDataSource", method: "setHostDataSourceSDT", idKey: "hostDataSourceId"},
	KindDataSourceInstance:          {name: "DataSourceInstance", method: "setDataSourceInstanceSDT", idKey: "dataSourceInstanceId"},
	KindHostDataSourceInstanceGroup: {name: "HostDataSourceInstanceGroup", method: "setHostDataSourceInstanceGroupSDT", idKey: "hostDataSourceInstanceGroupId"},
	KindAgent:                       {name: "Agent", method: "setAgentSDT", idKey: "agentId"},
}

func (k EntityKind) String() string {
	if spec, ok := kindTable[k]; ok {
		return spec.name
	}
	return fmt.Sprintf("EntityKind(%d)", int(k))
}

var numericID = regexp.MustCompile(`^[0-9]+$`)

// UnsupportedEntityError reports an identifier the wire protocol cannot
// address: a non-numeric id for any kind other than Host, or an unknown
// kind.
type UnsupportedEntityError struct {
	Kind EntityKind
	ID   string
}

func (e *UnsupportedEntityError) Error() string {
	return fmt.Sprintf("sdt: identifier %q is not usable for entity kind %s: only hosts may be addressed by display name", e.ID, e.Kind)
}

// UnsupportedRecurrenceError reports a recurrence type other than
// one-time.
type UnsupportedRecurrenceError struct {
	Type int
}

func (e *UnsupportedRecurrenceError) Error() string {
	return fmt.Sprintf("sdt: recurrence type %d is not supported, only one-time (%d) windows can be planned", e.Type, OneTimeRecurrence)
}

// Planned is the wire form of a downtime window: the RPC method to call
// and its parameters.
type Planned struct {
	Method string
	Params url.Values
}

// Plan builds the wire parameters for a one-time downtime window.
// A numeric identifier selects the kind's id key (hostGroupId, agentId,
// ...); a non-numeric identifier is accepted only for KindHost, under the
// host key. Months go out zero-based: January is 0. The comment parameter
// is emitted only when non-empty. The range is not validated for
// ordering; the service accepts whatever the caller supplies.
func Plan(kind EntityKind, id string, start, end time.Time, comment string) (*Planned, error) {
	spec, ok := kindTable[kind]
	if !ok {
		return nil, &UnsupportedEntityError{Kind: kind, ID: id}
	}

	params := url.Values{}
	switch {
	case numericID.MatchString(id):
		params.Set(spec.idKey, id)
	case spec.nameKey != "":
		params.Set(spec.nameKey, id)
	default:
		return nil, &UnsupportedEntityError{Kind: kind, ID: id}
	}

	params.Set("type", strconv.Itoa(OneTimeRecurrence))
	if comment != "" {
		params.Set("comment", comment)
	}
	setInstant(params, "", start)
	setInstant(params, "end", end)

	return &Planned{Method: spec.method, Params: params}, nil
}

// PlanRecurrence is Plan with an explicit recurrence type; anything but
// OneTimeRecurrence fails.
func PlanRecurrence(kind EntityKind, id string, recurrence int, start, end time.Time, comment string) (*Planned, error) {
	if recurrence != OneTimeRecurrence {
		return nil, &UnsupportedRecurrenceError{Type: recurrence}
	}
	return Plan(kind, id, start, end, comment)
}

// PlanStrings is Plan for callers holding the range as strings; both ends
// are parsed with ParseTime first.
func PlanStrings(kind EntityKind, id, start, end, comment string) (*Planned, error) {
	startTime, err := ParseTime(start)
	if err != nil {
		return nil, fmt.Errorf("sdt: parsing start time: %w", err)
	}
	endTime, err := ParseTime(end)
	if err != nil {
		return nil, fmt.Errorf("sdt: parsing end time: %w", err)
	}
	return Plan(kind, id, startTime, endTime, comment)
}

// ParseTime parses an ISO-8601 (or similar) timestamp.
func ParseTime(value string) (time.Time, error) {
	return dateparse.ParseAny(value)
}

// setInstant decomposes one calendar instant into the five wire fields.
// The wire month is zero-based while time.Month is one-based.
func setInstant(params url.Values, prefix string, t time.Time) {
	key := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + strings.ToUpper(name[:1]) + name[1:]
	}
	params.Set(key("year"), strconv.Itoa(t.Year()))
	params.Set(key("month"), strconv.Itoa(int(t.Month())-1))
	params.Set(key("day"), strconv.Itoa(t.Day()))
	params.Set(key("hour"), strconv.Itoa(t.Hour()))
	params.Set(key("minute"), strconv.Itoa(t.Minute()))
}
