package crontz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTriggers(t *testing.T) {
	t.Run("mixed names and literals", func(t *testing.T) {
		artifact, err := BuildTriggers([]SchedulePair{
			{NameOrLiteral: "daily_2am", OffsetHours: 8},
			{NameOrLiteral: "every_15min", OffsetHours: 8},
			{NameOrLiteral: "30 9 * * 1", OffsetHours: 8},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"0 18 * * *",
			"*/15 * * * *",
			"30 1 * * 1",
		}, artifact.Triggers.Crons)

		require.Len(t, artifact.ConversionInfo.Entries, 3)
		assert.Equal(t, "daily_2am", artifact.ConversionInfo.Entries[0].Name)
		assert.Equal(t, "0 2 * * *", artifact.ConversionInfo.Entries[0].Original)
		assert.Equal(t, "0 18 * * *", artifact.ConversionInfo.Entries[0].Converted)
		assert.NotEmpty(t, artifact.ConversionInfo.Entries[0].Notes)

		// Raw literals carry no registry name.
		assert.Empty(t, artifact.ConversionInfo.Entries[2].Name)

		assert.NotEmpty(t, artifact.ConversionInfo.RunID)
		assert.False(t, artifact.ConversionInfo.GeneratedAt.IsZero())
	})

	t.Run("invalid literal fails the build", func(t *testing.T) {
		_, err := BuildTriggers([]SchedulePair{
			{NameOrLiteral: "0 2 * *", OffsetHours: 8},
		})
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("empty input yields empty artifact", func(t *testing.T) {
		artifact, err := BuildTriggers(nil)
		require.NoError(t, err)
		assert.Empty(t, artifact.Triggers.Crons)
		assert.Empty(t, artifact.ConversionInfo.Entries)
	})
}
