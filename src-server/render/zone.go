package render

import (
	"time"
	_ "time/tzdata"
)

// LoadZone resolves an IANA identifier. "" and "Local" are rejected since
// time.LoadLocation maps them to UTC and the host zone.
func LoadZone(timezone string) (*time.Location, bool) {
	if timezone == "" || timezone == "Local" {
		return nil, false
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, false
	}
	return loc, true
}

func CurrentTime(loc *time.Location, now time.Time) string {
	return now.In(loc).Format(CurrentTimeLayout)
}
