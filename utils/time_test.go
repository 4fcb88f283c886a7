package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowsTimeEpoch(t *testing.T) {
	// 1970-01-01 00:00:00 UTC in FILETIME ticks
	winTime := WindowsTime{Stamp: 116444736000000000}
	assert.Equal(t, int64(0), winTime.Unix())
	assert.Equal(t, "1970-01-01T00:00:00.0000000Z", winTime.ConvertToIsoTime())
}

func TestWindowsTimeKnownValue(t *testing.T) {
	// 2022-01-01 00:00:00 UTC
	winTime := WindowsTime{Stamp: 132854688000000000}
	assert.Equal(t, int64(1640995200), winTime.Unix())
	assert.True(t, winTime.IsValid())
}

func TestWindowsTimeSubsecondPrecision(t *testing.T) {
	winTime := WindowsTime{Stamp: 132854688000000001}
	assert.Equal(t, "2022-01-01T00:00:00.0000001Z", winTime.ConvertToIsoTime())
	assert.False(t, winTime.SubsecondZero())
}

func TestWindowsTimeNotDefined(t *testing.T) {
	winTime := WindowsTime{}
	assert.False(t, winTime.IsDefined())
	assert.Equal(t, NotDefinedStamp, winTime.ConvertToIsoTime())
	assert.Equal(t, int64(0), winTime.Unix())
}

func TestWindowsTimeOverflow(t *testing.T) {
	winTime := WindowsTime{Stamp: ^uint64(0)}
	assert.True(t, winTime.IsDefined())
	assert.False(t, winTime.IsValid())
	assert.Equal(t, InvalidStamp, winTime.ConvertToIsoTime())
	assert.Equal(t, int64(0), winTime.Unix())
}

func TestWindowsTimeFarFuture(t *testing.T) {
	// past year 9999 but still below the int64 cutoff
	winTime := WindowsTime{Stamp: 2650467744000000001}
	assert.False(t, winTime.IsValid())
	assert.Equal(t, InvalidStamp, winTime.ConvertToIsoTime())
}

func TestWindowsTimeLocalRendering(t *testing.T) {
	loc := time.FixedZone("plus2", 2*3600)
	winTime := WindowsTime{Stamp: 132854688000000000}
	assert.Equal(t, "2022-01-01T02:00:00.0000000+02:00", winTime.ConvertToIsoTimeIn(loc))
	// the numeric value other components compare never moves
	assert.Equal(t, int64(1640995200), winTime.Unix())
}

func TestWindowsTimeBefore(t *testing.T) {
	earlier := WindowsTime{Stamp: 100}
	later := WindowsTime{Stamp: 200}
	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestNewWindowsTime(t *testing.T) {
	winTime := NewWindowsTime(0x2b576a00, 0x01d7ee4d)
	assert.Equal(t, uint64(0x01d7ee4d2b576a00), winTime.Stamp)
}

func TestSubsecondZero(t *testing.T) {
	assert.True(t, WindowsTime{Stamp: 132854688000000000}.SubsecondZero())
	assert.False(t, WindowsTime{Stamp: 132854688000000100}.SubsecondZero())
}
