package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	snaps []Snapshot
}

func (r *recordingListener) StateChanged(s Snapshot) {
	r.snaps = append(r.snaps, s)
}

func TestListenerReceivesSnapshotsAfterMutations(t *testing.T) {
	g := newTestGame(t, 2, Blue, 6)
	rec := &recordingListener{}
	g.Subscribe(rec)

	g.Roll()
	require.Len(t, rec.snaps, 1)
	require.Equal(t, 6, rec.snaps[0].PendingRoll)
	require.Equal(t, AwaitingSelection, rec.snaps[0].Phase)

	require.NoError(t, g.Select(0))
	require.Len(t, rec.snaps, 2)
	require.Equal(t, 0, rec.snaps[1].Positions[Blue][0])

	g.Reset()
	require.Len(t, rec.snaps, 3)
	require.Equal(t, AwaitingRoll, rec.snaps[2].Phase)
}

func TestListenerReceivesRejectedActions(t *testing.T) {
	g := newTestGame(t, 2, Blue)
	rec := &recordingListener{}
	g.Subscribe(rec)

	require.Error(t, g.Select(0))
	require.Len(t, rec.snaps, 1, "status text changes are published too")
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	g := newTestGame(t, 2, Blue, 6, 6)
	rec := &recordingListener{}
	g.Subscribe(rec)

	g.Roll()
	require.Len(t, rec.snaps, 1)

	g.Unsubscribe(rec)
	require.NoError(t, g.Select(0))
	g.Roll()
	require.Len(t, rec.snaps, 1)
}

func TestDoubleSubscribeIsNoOp(t *testing.T) {
	g := newTestGame(t, 2, Blue, 6)
	rec := &recordingListener{}
	g.Subscribe(rec)
	g.Subscribe(rec)

	g.Roll()
	require.Len(t, rec.snaps, 1)
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t, 2, Blue, 6)
	g.Roll()
	snap := g.Snapshot()

	require.NoError(t, g.Select(0))
	require.Equal(t, YardPos, snap.Positions[Blue][0], "held snapshot must not change")
	require.Equal(t, 6, snap.PendingRoll)
}
