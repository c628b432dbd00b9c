package models

import "time"

const (
	TagName            = "Name"
	TagCategory        = "Category"
	TagTerminationDate = "TerminationDate"

	CategoryDailyInstance   = "DailyInstance"
	CategoryTestDayInstance = "TestDayInstance"

	// TerminationDateLayout is the format of the TerminationDate tag.
	TerminationDateLayout = "2006-01-02"
)

type Instance struct {
	ID             string
	State          string
	InstanceType   string
	ImageID        string
	PrivateDNSName string
	PublicDNSName  string
	PrivateIP      string
	PublicIP       string
	LaunchTime     time.Time
	Tags           map[string]string
}

// TerminationDate returns the parsed TerminationDate tag, if set.
func (i Instance) TerminationDate() (time.Time, bool) {
	v, ok := i.Tags[TagTerminationDate]
	if !ok || v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(TerminationDateLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateRange bounds an instance launch date. A nil End leaves the range open.
type DateRange struct {
	Start time.Time
	End   *time.Time
}

// Contains compares calendar dates only.
func (r DateRange) Contains(t time.Time) bool {
	d := truncateDay(t)
	if d.Before(truncateDay(r.Start)) {
		return false
	}
	if r.End != nil && d.After(truncateDay(*r.End)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Tag struct {
	Key   string
	Value string
}
