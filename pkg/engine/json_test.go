package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorJSONRoundTrip(t *testing.T) {
	for c := Red; c < NumColors; c++ {
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var back Color
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, c, back)
	}
}

func TestColorUnmarshalRejectsUnknownName(t *testing.T) {
	var c Color
	require.Error(t, json.Unmarshal([]byte(`"purple"`), &c))
	require.Error(t, json.Unmarshal([]byte(`3`), &c))
}

func TestPhaseJSONRoundTrip(t *testing.T) {
	for _, p := range []Phase{AwaitingRoll, AwaitingSelection, Finished} {
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var back Phase
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, p, back)
	}
}

func TestPhaseUnmarshalRejectsUnknownName(t *testing.T) {
	var p Phase
	require.Error(t, json.Unmarshal([]byte(`"paused"`), &p))
}

// TestSnapshotJSONRoundTrip covers what API clients do: decode a full
// snapshot off the wire.
func TestSnapshotJSONRoundTrip(t *testing.T) {
	g := newTestGame(t, 4, Blue, 6, 6)
	g.Roll()
	require.NoError(t, g.Select(0))
	g.Roll()

	snap := g.Snapshot()
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var back Snapshot
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, snap, back)
}
