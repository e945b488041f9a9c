// Copyright (c) 2024 Neomantra Corp

package dbn

import (
	"bytes"
	"math"
	"time"
)

// FIXED_PRICE_SCALE is the denominator of fixed prices in DBN: prices are
// transmitted as i64 fixed-point values scaled by 1e9.
const FIXED_PRICE_SCALE float64 = 1_000_000_000.0

// UNDEF_PRICE is the sentinel price value meaning "undefined" or "not applicable".
const UNDEF_PRICE int64 = math.MaxInt64

// UNDEF_ORDER_SIZE is the sentinel order size/quantity value meaning "undefined".
const UNDEF_ORDER_SIZE uint32 = math.MaxUint32

// UNDEF_TIMESTAMP is the sentinel ts_event/ts_recv value meaning "undefined".
const UNDEF_TIMESTAMP uint64 = math.MaxInt64

// UNDEF_STAT_QUANTITY is the sentinel StatMsg quantity value meaning "undefined".
const UNDEF_STAT_QUANTITY int64 = math.MaxInt64

// Fixed9ToFloat64 converts a DBN fixed-point price (scale 1e9) to a float64.
// UNDEF_PRICE maps to NaN, preserving "undefined" through the conversion.
func Fixed9ToFloat64(fixed int64) float64 {
	if fixed == UNDEF_PRICE {
		return math.NaN()
	}
	return float64(fixed) / FIXED_PRICE_SCALE
}

// PriceToFloat is an alias of Fixed9ToFloat64 matching spec.md's naming.
func PriceToFloat(fixed int64) float64 {
	return Fixed9ToFloat64(fixed)
}

// FloatToPrice converts a float64 to a DBN fixed-point price (scale 1e9),
// rounding half away from zero. NaN and +/-Inf map to UNDEF_PRICE.
func FloatToPrice(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return UNDEF_PRICE
	}
	scaled := f * FIXED_PRICE_SCALE
	if scaled >= 0 {
		return int64(math.Floor(scaled + 0.5))
	}
	return int64(math.Ceil(scaled - 0.5))
}

// TrimNullBytes removes trailing NUL bytes from b and returns the remainder as a string.
func TrimNullBytes(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}

// PadNullBytes returns a width-byte slice containing s truncated or NUL-padded to width.
func PadNullBytes(s string, width int) []byte {
	out := make([]byte, width)
	copy(out, s)
	return out
}

// TimestampToSecNanos converts a DBN timestamp (nanoseconds since epoch) to
// separate seconds and nanoseconds components.
func TimestampToSecNanos(dbnTimestamp uint64) (int64, int64) {
	secs := int64(dbnTimestamp / 1e9)
	nanos := int64(dbnTimestamp) - secs*1e9
	return secs, nanos
}

// TimestampToTime converts a DBN timestamp (nanoseconds since epoch) to a time.Time.
func TimestampToTime(dbnTimestamp uint64) time.Time {
	secs, nanos := TimestampToSecNanos(dbnTimestamp)
	return time.Unix(secs, nanos)
}

// TsToDatetime converts a DBN timestamp to a time.Time, returning false if the
// timestamp is the UNDEF_TIMESTAMP sentinel.
func TsToDatetime(dbnTimestamp uint64) (time.Time, bool) {
	if dbnTimestamp == UNDEF_TIMESTAMP {
		return time.Time{}, false
	}
	return TimestampToTime(dbnTimestamp), true
}

// DatetimeToTs converts a time.Time to a DBN timestamp (nanoseconds since epoch).
func DatetimeToTs(t time.Time) uint64 {
	return uint64(t.UnixNano())
}

// TimeToYMD returns the YYYYMMDD for the time.Time in that Time's location.
// A zero time returns a 0 value.
// From https://github.com/neomantra/ymdflag/blob/main/ymdflag.go#L49
func TimeToYMD(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}
	return uint32(10000*t.Year() + 100*int(t.Month()) + t.Day())
}
