package registry_test

import (
	"testing"

	"github.com/serroba/plugin-registry-go/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSubmission(t *testing.T) {
	t.Run("accepts a well-formed submission", func(t *testing.T) {
		body := []byte(`{"plugins": {"A": {"depend": ["B"]}, "B": {}}}`)

		plugins, err := registry.ValidateSubmission(body)

		require.NoError(t, err)
		assert.Len(t, plugins, 2)
		assert.Equal(t, []string{"B"}, plugins["A"].Depend)
		assert.Empty(t, plugins["B"].Depend)
		assert.Empty(t, plugins["B"].Softdepend)
	})

	t.Run("preserves dependency order", func(t *testing.T) {
		body := []byte(`{"plugins": {"A": {"depend": ["C", "B"], "softdepend": ["E", "D"]}}}`)

		plugins, err := registry.ValidateSubmission(body)

		require.NoError(t, err)
		assert.Equal(t, []string{"C", "B"}, plugins["A"].Depend)
		assert.Equal(t, []string{"E", "D"}, plugins["A"].Softdepend)
	})

	t.Run("rejects malformed submissions", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"not json", `not json at all`},
			{"top level array", `["plugins"]`},
			{"top level string", `"plugins"`},
			{"missing plugins", `{}`},
			{"plugins not an object", `{"plugins": ["A"]}`},
			{"empty plugins", `{"plugins": {}}`},
			{"plugin maps to null", `{"plugins": {"A": null}}`},
			{"plugin maps to string", `{"plugins": {"A": "B"}}`},
			{"plugin maps to array", `{"plugins": {"A": ["B"]}}`},
			{"empty plugin name", `{"plugins": {"": {}}}`},
			{"depend not an array", `{"plugins": {"A": {"depend": "B"}}}`},
			{"non-string depend entry", `{"plugins": {"A": {"depend": [1]}}}`},
			{"non-string softdepend entry", `{"plugins": {"A": {"softdepend": [{"x":1}]}}}`},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				plugins, err := registry.ValidateSubmission([]byte(tc.body))

				assert.Nil(t, plugins)

				var vErr *registry.ValidationError
				require.ErrorAs(t, err, &vErr)
			})
		}
	})

	t.Run("tolerates absent dependency lists", func(t *testing.T) {
		body := []byte(`{"plugins": {"A": {"softdepend": ["B"]}}}`)

		plugins, err := registry.ValidateSubmission(body)

		require.NoError(t, err)
		assert.Nil(t, plugins["A"].Depend)
		assert.Equal(t, []string{"B"}, plugins["A"].Softdepend)
	})
}
