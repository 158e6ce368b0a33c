package utils

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTimezoneOptions(t *testing.T) {
	options := ListTimezoneOptions()
	require.NotEmpty(t, options)

	byName := make(map[string]TimezoneOption, len(options))
	for _, o := range options {
		byName[o.Name] = o
	}

	sin, ok := byName["Asia/Singapore"]
	require.True(t, ok)
	assert.Equal(t, "Asia/Singapore (UTC+08:00)", sin.Display)

	sorted := sort.SliceIsSorted(options, func(i, j int) bool {
		if options[i].offset != options[j].offset {
			return options[i].offset < options[j].offset
		}
		return options[i].Name < options[j].Name
	})
	assert.True(t, sorted)
}

func TestTimezoneOptionsSkipUnknownZones(t *testing.T) {
	now := time.Date(2024, 10, 23, 12, 0, 0, 0, time.UTC)
	options := timezoneOptionsAt(now, []string{"Asia/Singapore", "Not/AZone", "UTC"})
	require.Len(t, options, 2)
	assert.Equal(t, "UTC", options[0].Name)
	assert.Equal(t, "Asia/Singapore", options[1].Name)
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "UTC+08:00", formatOffset(8*3600))
	assert.Equal(t, "UTC-07:00", formatOffset(-7*3600))
	assert.Equal(t, "UTC+05:30", formatOffset(5*3600+30*60))
	assert.Equal(t, "UTC+00:00", formatOffset(0))
}
