// Package biztime provides business-timezone calculations. All storage and
// transport use UTC; the analysts' timezone (America/Sao_Paulo) is used only
// to decide which calendar day or month a timestamp belongs to.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the analysts' business timezone.
	DefaultTimezone = "America/Sao_Paulo"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, auto-initializing with
// the default when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// SameBizDay reports whether two instants fall on the same business-timezone
// calendar day.
func SameBizDay(a, b time.Time) bool {
	al, bl := a.In(Location()), b.In(Location())
	ay, am, ad := al.Date()
	by, bm, bd := bl.Date()
	return ay == by && am == bm && ad == bd
}

// SameBizMonth reports whether two instants fall in the same
// business-timezone calendar month.
func SameBizMonth(a, b time.Time) bool {
	al, bl := a.In(Location()), b.In(Location())
	return al.Year() == bl.Year() && al.Month() == bl.Month()
}

// StartOfDay returns midnight of t's business-timezone day, in that zone.
func StartOfDay(t time.Time) time.Time {
	lt := t.In(Location())
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Location())
}

// StartOfMonth returns the first day of t's business-timezone month.
func StartOfMonth(t time.Time) time.Time {
	lt := t.In(Location())
	return time.Date(lt.Year(), lt.Month(), 1, 0, 0, 0, 0, Location())
}
