package timezone

import (
	"fmt"
	"pms/config"
	"time"

	"github.com/rs/zerolog/log"
)

const hoursPerDay = 24

var appLocation = time.UTC

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return
	}

	if err := SetLocation(cfg.App.Timezone); err != nil {
		log.Error().Err(err).Str("timezone", cfg.App.Timezone).Msg("Failed to load timezone, falling back to UTC")

		return
	}

	log.Info().Str("timezone", appLocation.String()).Msg("Property timezone initialized")
}

// SetLocation switches the property timezone. Names follow the IANA database.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load location %q: %w", name, err)
	}

	appLocation = loc

	return nil
}

// Now returns the current time in the property timezone.
func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads value in the property timezone when layout carries no offset.
func Parse(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, appLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %q: %w", value, err)
	}

	return t, nil
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// StartOfDay truncates t to midnight of its date in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalendarDays is date(to) - date(from), both dates read in the location of from.
// A stay from 14:00 on the 1st to 11:00 on the 5th spans four nights.
func CalendarDays(from, to time.Time) int {
	to = to.In(from.Location())

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(end.Sub(start).Hours() / hoursPerDay)
}
