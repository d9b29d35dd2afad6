package enterprise

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestDatabase_ExtraRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("unknown keys survive a round trip", func(t *testing.T) {
		t.Parallel()

		input := []byte(`{
			"uid": 1,
			"name": "cache",
			"port": 12000,
			"crdt_guid": "e5f0a1",
			"proxy_policy": "single"
		}`)

		var database Database

		require.NoError(t, json.Unmarshal(input, &database))
		assert.Equal(t, uint32(1), database.UID)
		assert.Equal(t, "cache", database.Name)

		// The unmodeled keys landed in Extra, the modeled ones did not.
		_, ok := database.Extra.Get("crdt_guid")
		assert.True(t, ok)
		_, ok = database.Extra.Get("name")
		assert.False(t, ok)

		output, err := json.Marshal(database)
		require.NoError(t, err)

		var raw map[string]json.RawMessage

		require.NoError(t, json.Unmarshal(output, &raw))
		assert.JSONEq(t, `"e5f0a1"`, string(raw["crdt_guid"]))
		assert.JSONEq(t, `"single"`, string(raw["proxy_policy"]))
		assert.JSONEq(t, `"cache"`, string(raw["name"]))
	})

	t.Run("fully modeled body leaves extra empty", func(t *testing.T) {
		t.Parallel()

		var database Database

		require.NoError(t, json.Unmarshal([]byte(`{"uid":2,"name":"sessions"}`), &database))
		assert.Empty(t, database.Extra)
	})

	t.Run("modeled fields win over stale extra entries", func(t *testing.T) {
		t.Parallel()

		database := Database{
			UID:   3,
			Name:  "events",
			Extra: Extra{"name": json.RawMessage(`"stale"`)},
		}

		output, err := json.Marshal(database)
		require.NoError(t, err)

		var raw map[string]any

		require.NoError(t, json.Unmarshal(output, &raw))
		assert.Equal(t, "events", raw["name"])
	})

	t.Run("slices of entities marshal their extras", func(t *testing.T) {
		t.Parallel()

		var databases []Database

		require.NoError(t, json.Unmarshal([]byte(`[{"uid":1,"name":"a","oss_cluster":true}]`), &databases))
		require.Len(t, databases, 1)

		output, err := json.Marshal(databases)
		require.NoError(t, err)
		assert.Contains(t, string(output), `"oss_cluster":true`)
	})
}

func TestExtra_Decode(t *testing.T) {
	t.Parallel()

	extra := Extra{
		"shard_count": json.RawMessage(`4`),
		"tags":        json.RawMessage(`["prod","eu"]`),
	}

	t.Run("decodes a present field", func(t *testing.T) {
		t.Parallel()

		var count int

		require.NoError(t, extra.Decode("shard_count", &count))
		assert.Equal(t, 4, count)

		var tags []string

		require.NoError(t, extra.Decode("tags", &tags))
		assert.Equal(t, []string{"prod", "eu"}, tags)
	})

	t.Run("missing field is a sentinel", func(t *testing.T) {
		t.Parallel()

		var out int

		err := extra.Decode("absent", &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExtraFieldNotFound)
	})

	t.Run("type mismatch reports the field", func(t *testing.T) {
		t.Parallel()

		var out int

		err := extra.Decode("tags", &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tags")
	})
}

func TestUnmarshalExtra_NonEntityShapes(t *testing.T) {
	t.Parallel()

	t.Run("alert map values keep their extras", func(t *testing.T) {
		t.Parallel()

		var alerts AlertMap

		input := []byte(`{"node_cpu":{"severity":"WARNING","threshold_crossed":true}}`)
		require.NoError(t, json.Unmarshal(input, &alerts))

		alert := alerts["node_cpu"]
		assert.Equal(t, "WARNING", alert.Severity)

		_, ok := alert.Extra.Get("threshold_crossed")
		assert.True(t, ok)
	})
}
