package utils

import (
	"time"
)

// ISODateAtOffset formats a unix timestamp as YYYY-MM-DD in the zone given by a UTC
// offset in seconds, the way exchanges report their trading days.
func ISODateAtOffset(timestamp int64, gmtOffset int) string {
	loc := time.FixedZone("exchange", gmtOffset)
	return time.Unix(timestamp, 0).In(loc).Format(time.DateOnly)
}
