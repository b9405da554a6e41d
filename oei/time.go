package oei

import (
	"fmt"
	"strconv"
	"time"
)

func formatTime(d time.Duration) string {
	ms := d / time.Millisecond
	if ms < 0 {
		ms = 0
	}
	return strconv.FormatUint(uint64(ms), 10)
}

func parseTime(s string) (time.Duration, error) {
	ms, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad ms: %q", s)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
