package utils

import (
	"fmt"
	"sort"
	"time"
)

// TimezoneOption is one entry of the manual-entry timezone dropdown.
type TimezoneOption struct {
	Name    string
	Display string
	offset  int
}

// knownZones is the fallback zone list used when no timezone table is
// configured. It covers the zones airports commonly resolve to.
var knownZones = []string{
	"Pacific/Honolulu", "America/Anchorage", "America/Los_Angeles", "America/Vancouver",
	"America/Denver", "America/Phoenix", "America/Chicago", "America/Mexico_City",
	"America/New_York", "America/Toronto", "America/Bogota", "America/Lima",
	"America/Halifax", "America/Santiago", "America/Sao_Paulo", "America/Argentina/Buenos_Aires",
	"Atlantic/Azores", "UTC", "Europe/London", "Europe/Lisbon", "Europe/Dublin",
	"Africa/Casablanca", "Europe/Paris", "Europe/Amsterdam", "Europe/Berlin",
	"Europe/Brussels", "Europe/Madrid", "Europe/Rome", "Europe/Zurich", "Europe/Vienna",
	"Europe/Copenhagen", "Europe/Oslo", "Europe/Stockholm", "Europe/Warsaw",
	"Africa/Lagos", "Europe/Athens", "Europe/Helsinki", "Europe/Istanbul", "Europe/Kyiv",
	"Africa/Cairo", "Africa/Johannesburg", "Africa/Nairobi", "Europe/Moscow",
	"Asia/Riyadh", "Asia/Tehran", "Asia/Dubai", "Asia/Baku", "Asia/Kabul",
	"Asia/Karachi", "Asia/Tashkent", "Asia/Kolkata", "Asia/Colombo", "Asia/Kathmandu",
	"Asia/Dhaka", "Asia/Yangon", "Asia/Bangkok", "Asia/Jakarta", "Asia/Ho_Chi_Minh",
	"Asia/Singapore", "Asia/Kuala_Lumpur", "Asia/Hong_Kong", "Asia/Shanghai",
	"Asia/Taipei", "Asia/Manila", "Australia/Perth", "Asia/Tokyo", "Asia/Seoul",
	"Australia/Adelaide", "Australia/Darwin", "Australia/Brisbane", "Australia/Sydney",
	"Australia/Melbourne", "Pacific/Guam", "Pacific/Noumea", "Pacific/Auckland",
	"Pacific/Fiji", "Pacific/Apia",
}

// ListTimezoneOptions builds the dropdown entries for all known zones
// with their current UTC offsets, sorted by offset then name. Zones
// that fail to load are skipped rather than aborting the listing.
func ListTimezoneOptions() []TimezoneOption {
	return timezoneOptionsAt(time.Now().UTC(), knownZones)
}

func timezoneOptionsAt(now time.Time, zones []string) []TimezoneOption {
	options := make([]TimezoneOption, 0, len(zones))
	for _, name := range zones {
		loc, err := time.LoadLocation(name)
		if err != nil {
			continue
		}
		_, offset := now.In(loc).Zone()
		options = append(options, TimezoneOption{
			Name:    name,
			Display: fmt.Sprintf("%s (%s)", name, formatOffset(offset)),
			offset:  offset,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].offset != options[j].offset {
			return options[i].offset < options[j].offset
		}
		return options[i].Name < options[j].Name
	})
	return options
}

func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}
