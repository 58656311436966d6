package crontz

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notesContain(result *Result, substr string) bool {
	for _, note := range result.Notes {
		if strings.Contains(note, substr) {
			return true
		}
	}
	return false
}

func TestConvert_SingleHour(t *testing.T) {
	tests := []struct {
		name       string
		literal    string
		offset     float64
		wantHour   string
		wantAdjust int
	}{
		{name: "sgt 2am to previous day", literal: "0 2 * * *", offset: 8, wantHour: "18", wantAdjust: -1},
		{name: "sgt 10am same day", literal: "0 10 * * *", offset: 8, wantHour: "2", wantAdjust: 0},
		{name: "sgt midnight", literal: "0 0 * * *", offset: 8, wantHour: "16", wantAdjust: -1},
		{name: "negative offset to next day", literal: "30 20 * * *", offset: -8, wantHour: "4", wantAdjust: 1},
		{name: "negative offset same day", literal: "30 10 * * *", offset: -8, wantHour: "18", wantAdjust: 0},
		{name: "zero offset", literal: "0 12 * * *", offset: 0, wantHour: "12", wantAdjust: 0},
		{name: "half hour offset truncates", literal: "0 2 * * *", offset: 5.5, wantHour: "21", wantAdjust: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Convert(tt.literal, tt.offset)
			require.NoError(t, err)

			assert.Equal(t, tt.wantHour, result.Converted.Hour)
			assert.Equal(t, tt.wantAdjust, result.DayAdjustment)
			// Minute and month are never altered by timezone conversion.
			assert.Equal(t, result.Original.Minute, result.Converted.Minute)
			assert.Equal(t, result.Original.Month, result.Converted.Month)
		})
	}
}

func TestConvert_HourLaw(t *testing.T) {
	// For every plain hour h and integer offset o, the converted hour is
	// (h - o) mod 24, with day adjustment -1 iff h-o < 0 and +1 iff
	// h-o >= 24.
	for _, offset := range []int{-12, -8, -1, 0, 1, 8, 12} {
		for h := 0; h < 24; h++ {
			literal := fmt.Sprintf("0 %d * * *", h)
			result, err := Convert(literal, float64(offset))
			require.NoError(t, err)

			shifted := h - offset
			want := ((shifted % 24) + 24) % 24
			assert.Equal(t, fmt.Sprintf("%d", want), result.Converted.Hour, "h=%d o=%d", h, offset)

			switch {
			case shifted < 0:
				assert.Equal(t, -1, result.DayAdjustment, "h=%d o=%d", h, offset)
			case shifted >= 24:
				assert.Equal(t, 1, result.DayAdjustment, "h=%d o=%d", h, offset)
			default:
				assert.Equal(t, 0, result.DayAdjustment, "h=%d o=%d", h, offset)
			}
		}
	}
}

func TestConvert_WildcardAndStepPassThrough(t *testing.T) {
	for _, literal := range []string{"*/15 * * * *", "0 * * * *", "0 */4 * * *"} {
		result, err := Convert(literal, 8)
		require.NoError(t, err)

		assert.Equal(t, literal, result.Converted.String())
		assert.Equal(t, 0, result.DayAdjustment)
		assert.True(t, notesContain(result, "left unchanged") || result.Converted.Hour == result.Original.Hour)
	}
}

func TestConvert_StepNoteEmitted(t *testing.T) {
	result, err := Convert("*/15 * * * *", 8)
	require.NoError(t, err)
	require.NotEmpty(t, result.Notes)
	assert.True(t, notesContain(result, "left unchanged"))
}

func TestConvert_HourRange(t *testing.T) {
	t.Run("range within day", func(t *testing.T) {
		result, err := Convert("0 9-17 * * *", 8)
		require.NoError(t, err)
		assert.Equal(t, "1-9", result.Converted.Hour)
	})

	t.Run("range crossing midnight is split", func(t *testing.T) {
		result, err := Convert("0 2-10 * * *", 8)
		require.NoError(t, err)
		assert.Equal(t, "18-23,0-2", result.Converted.Hour)
		assert.True(t, notesContain(result, "crosses midnight"))
	})
}

func TestConvert_HourList(t *testing.T) {
	t.Run("each element converted", func(t *testing.T) {
		result, err := Convert("0 10,14,22 * * *", 8)
		require.NoError(t, err)
		assert.Equal(t, "2,6,14", result.Converted.Hour)
		assert.Equal(t, 0, result.DayAdjustment)
	})

	t.Run("underflowing element raises day adjustment", func(t *testing.T) {
		result, err := Convert("0 2,14 * * *", 8)
		require.NoError(t, err)
		assert.Equal(t, "18,6", result.Converted.Hour)
		assert.Equal(t, -1, result.DayAdjustment)
	})

	t.Run("list with embedded range converted in place", func(t *testing.T) {
		result, err := Convert("0 9-11,14 * * *", 8)
		require.NoError(t, err)
		assert.Equal(t, "1-3,6", result.Converted.Hour)
	})

	t.Run("list with embedded range splits on midnight", func(t *testing.T) {
		result, err := Convert("0 2-10,14 * * *", 8)
		require.NoError(t, err)
		assert.Equal(t, "18-23,0-2,6", result.Converted.Hour)
		assert.Equal(t, -1, result.DayAdjustment)
		assert.True(t, notesContain(result, "crosses midnight"))
	})
}

func TestConvert_DayOfMonth(t *testing.T) {
	t.Run("untouched without day adjustment", func(t *testing.T) {
		result, err := Convert("0 12 15 * *", 8)
		require.NoError(t, err)
		assert.Equal(t, "15", result.Converted.Day)
		assert.Empty(t, result.Notes)
	})

	t.Run("warning when schedule moves a day", func(t *testing.T) {
		result, err := Convert("0 2 15 * *", 8)
		require.NoError(t, err)
		assert.Equal(t, "15", result.Converted.Day)
		assert.True(t, notesContain(result, "manual adjustment"))
	})
}

func TestConvert_Weekday(t *testing.T) {
	t.Run("single weekday shifts backward", func(t *testing.T) {
		result, err := Convert("0 2 * * 1", 8)
		require.NoError(t, err)
		assert.Equal(t, "0", result.Converted.Weekday)
		assert.True(t, notesContain(result, "shifted"))
	})

	t.Run("sunday as zero wraps to saturday", func(t *testing.T) {
		result, err := Convert("0 2 * * 0", 8)
		require.NoError(t, err)
		assert.Equal(t, "6", result.Converted.Weekday)
	})

	t.Run("single weekday shifts forward", func(t *testing.T) {
		result, err := Convert("0 20 * * 6", -8)
		require.NoError(t, err)
		assert.Equal(t, "0", result.Converted.Weekday)
	})

	t.Run("range left unchanged with warning", func(t *testing.T) {
		result, err := Convert("0 2 * * 1-5", 8)
		require.NoError(t, err)
		assert.Equal(t, "1-5", result.Converted.Weekday)
		assert.True(t, notesContain(result, "adjust manually"))
	})

	t.Run("list left unchanged with warning", func(t *testing.T) {
		result, err := Convert("0 2 * * 1,3,5", 8)
		require.NoError(t, err)
		assert.Equal(t, "1,3,5", result.Converted.Weekday)
		assert.True(t, notesContain(result, "adjust manually"))
	})

	t.Run("non numeric token cannot be adjusted", func(t *testing.T) {
		result, err := Convert("0 2 * * MON", 8)
		require.NoError(t, err)
		assert.Equal(t, "MON", result.Converted.Weekday)
		assert.True(t, notesContain(result, "cannot be adjusted"))
	})

	t.Run("untouched without day adjustment", func(t *testing.T) {
		result, err := Convert("0 12 * * 3", 8)
		require.NoError(t, err)
		assert.Equal(t, "3", result.Converted.Weekday)
	})
}

func TestConvert_Errors(t *testing.T) {
	t.Run("wrong field count", func(t *testing.T) {
		_, err := Convert("0 2 * *", 8)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("six fields", func(t *testing.T) {
		_, err := Convert("0 2 * * * *", 8)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("non numeric hour", func(t *testing.T) {
		_, err := Convert("0 noon * * *", 8)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("hour out of range", func(t *testing.T) {
		_, err := Convert("0 24 * * *", 8)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("bad range end", func(t *testing.T) {
		_, err := Convert("0 2-x * * *", 8)
		require.ErrorIs(t, err, ErrFormat)
	})
}

func TestConvert_NextRuns(t *testing.T) {
	t.Run("simple daily schedule", func(t *testing.T) {
		result, err := Convert("0 2 * * *", 8)
		require.NoError(t, err)

		require.NotNil(t, result.NextLocal)
		require.NotNil(t, result.NextUTC)

		assert.Equal(t, 2, result.NextLocal.Hour())
		assert.Equal(t, 0, result.NextLocal.Minute())
		assert.Equal(t, 18, result.NextUTC.Hour())

		now := time.Now().UTC()
		assert.True(t, result.NextUTC.After(now))
	})

	t.Run("not computed for stepped schedules", func(t *testing.T) {
		result, err := Convert("*/15 * * * *", 8)
		require.NoError(t, err)
		assert.Nil(t, result.NextLocal)
		assert.Nil(t, result.NextUTC)
	})

	t.Run("not computed for non wildcard day", func(t *testing.T) {
		result, err := Convert("0 2 1 * *", 8)
		require.NoError(t, err)
		assert.Nil(t, result.NextLocal)
		assert.Nil(t, result.NextUTC)
	})
}

func TestExpression_String(t *testing.T) {
	expr := Expression{Minute: "0", Hour: "18", Day: "*", Month: "*", Weekday: "*"}
	assert.Equal(t, "0 18 * * *", expr.String())
}
