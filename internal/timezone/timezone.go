package timezone

import "time"

// DefaultTimezone is the salon's local timezone. All date parsing,
// past-date checks and the cancellation cutoff are evaluated in it.
const DefaultTimezone = "America/Bogota"

// configured overrides DefaultTimezone when set at startup.
var configured string

// Configure sets the process-wide salon timezone. Invalid or empty
// names keep the default.
func Configure(tz string) {
	if IsValid(tz) {
		configured = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if tz == "" {
		tz = configured
	}
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(""))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
