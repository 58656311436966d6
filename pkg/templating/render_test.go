package templating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("substitutes variables", func(t *testing.T) {
		out, err := Render("api_base: {{.api_base}}/v1", map[string]string{
			"api_base": "https://api.example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "api_base: https://api.example.com/v1", out)
	})

	t.Run("plain text passes through", func(t *testing.T) {
		out, err := Render("no variables here", nil)
		require.NoError(t, err)
		assert.Equal(t, "no variables here", out)
	})

	t.Run("missing key fails", func(t *testing.T) {
		_, err := Render("{{.unknown}}", map[string]string{"known": "x"})
		require.ErrorIs(t, err, ErrTemplate)
	})

	t.Run("parse failure", func(t *testing.T) {
		_, err := Render("{{.broken", nil)
		require.ErrorIs(t, err, ErrTemplate)
	})

	t.Run("multiple variables", func(t *testing.T) {
		out, err := Render(`{"env": "{{.env}}", "region": "{{.region}}"}`, map[string]string{
			"env":    "staging",
			"region": "ap-southeast-1",
		})
		require.NoError(t, err)
		assert.Equal(t, `{"env": "staging", "region": "ap-southeast-1"}`, out)
	})
}
