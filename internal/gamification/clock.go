package gamification

import "time"

// All day-boundary math on the platform uses a single canonical timezone
// (IST). Mixing "now" sources is how streaks and mission resets drift apart,
// so everything below takes a Clock instead of calling time.Now directly.

// Clock supplies the current time. Production code uses RealClock; tests
// inject a fixed clock.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

var istLocation = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// No tzdata on the host; IST has no DST so a fixed offset is exact.
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// Location returns the canonical platform timezone.
func Location() *time.Location {
	return istLocation
}

// DateKey projects an instant to the canonical YYYY-MM-DD day string.
func DateKey(t time.Time) string {
	return t.In(istLocation).Format("2006-01-02")
}

// TodayKey is DateKey of the clock's now.
func TodayKey(clock Clock) string {
	return DateKey(clock.Now())
}
