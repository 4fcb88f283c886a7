package utils

import (
	"math"
	"time"
)

// Timestamps are stored on disk as the number of 100ns intervals since
// 1601-01-01 UTC. A raw value of zero means the field was never set.
const (
	TicksPerSecond   = 10000000
	EpochDifference  = 11644473600 // seconds between 1601 and 1970
	NotDefinedStamp  = "Not defined"
	InvalidStamp     = "Invalid timestamp"
	isoLayout        = "2006-01-02T15:04:05.0000000Z07:00"
	maxEpochSeconds  = 253402300799 // 9999-12-31T23:59:59
)

type WindowsTime struct {
	Stamp uint64
}

// NewWindowsTime assembles a WindowsTime from the split low/high dwords some
// structures carry.
func NewWindowsTime(low uint32, high uint32) WindowsTime {
	return WindowsTime{Stamp: uint64(high)<<32 | uint64(low)}
}

func (winTime WindowsTime) IsDefined() bool {
	return winTime.Stamp != 0
}

// IsValid reports whether the raw value converts to a date the host can
// represent. Zero is undefined, not invalid.
func (winTime WindowsTime) IsValid() bool {
	if !winTime.IsDefined() {
		return false
	}
	if winTime.Stamp > math.MaxInt64 {
		return false
	}
	return winTime.Unix() <= maxEpochSeconds
}

// Unix returns whole epoch seconds, 0 for undefined or unrepresentable
// values.
func (winTime WindowsTime) Unix() int64 {
	if !winTime.IsDefined() || winTime.Stamp > math.MaxInt64 {
		return 0
	}
	return int64(winTime.Stamp/TicksPerSecond) - EpochDifference
}

// ToTime converts to a UTC time.Time with 100ns precision.
func (winTime WindowsTime) ToTime() time.Time {
	secs := int64(winTime.Stamp/TicksPerSecond) - EpochDifference
	nsecs := int64(winTime.Stamp%TicksPerSecond) * 100
	return time.Unix(secs, nsecs).UTC()
}

// SubsecondZero reports an exactly zero sub second component. Timestomping
// tools commonly write second granularity values, making this a forensic
// tell on defined timestamps.
func (winTime WindowsTime) SubsecondZero() bool {
	return winTime.Stamp%TicksPerSecond == 0
}

func (winTime WindowsTime) Before(other WindowsTime) bool {
	return winTime.Stamp < other.Stamp
}

func (winTime WindowsTime) ConvertToIsoTime() string {
	return winTime.ConvertToIsoTimeIn(time.UTC)
}

// ConvertToIsoTimeIn renders the timestamp in the given zone. The zone
// affects only the rendered string, never the numeric epoch value other
// components compare.
func (winTime WindowsTime) ConvertToIsoTimeIn(loc *time.Location) string {
	if !winTime.IsDefined() {
		return NotDefinedStamp
	}
	if !winTime.IsValid() {
		return InvalidStamp
	}
	return winTime.ToTime().In(loc).Format(isoLayout)
}
