package collision

import (
	"testing"

	"github.com/mintpond/bos/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Keys())
}

func TestTracker_TrackKey_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackKey("name", 0x1234567890abcdef)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"name"}, tracker.Keys())

	err = tracker.TrackKey("age", 0xfedcba0987654321)
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"name", "age"}, tracker.Keys())
}

func TestTracker_TrackKey_Collision(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackKey("name", 0x1234567890abcdef)
	require.NoError(t, err)
	require.False(t, tracker.HasCollision())

	// Same hash, different key: collision, not an error.
	err = tracker.TrackKey("nmae", 0x1234567890abcdef)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"name", "nmae"}, tracker.Keys())
}

func TestTracker_TrackKey_Duplicate(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackKey("name", 0x1234567890abcdef)
	require.NoError(t, err)

	err = tracker.TrackKey("name", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrDuplicateKey)
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Keys_PreservesOrder(t *testing.T) {
	tracker := NewTracker()

	entries := []struct {
		key  string
		hash uint64
	}{
		{"a", 0x0001},
		{"b", 0x0002},
		{"c", 0x0003},
		{"d", 0x0004},
	}

	for _, e := range entries {
		err := tracker.TrackKey(e.key, e.hash)
		require.NoError(t, err)
	}

	keys := tracker.Keys()
	require.Equal(t, 4, len(keys))
	require.Equal(t, "a", keys[0])
	require.Equal(t, "b", keys[1])
	require.Equal(t, "c", keys[2])
	require.Equal(t, "d", keys[3])
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.TrackKey("name", 0x1234567890abcdef)
	_ = tracker.TrackKey("age", 0xfedcba0987654321)
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Keys())

	err := tracker.TrackKey("id", 0x1111111111111111)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.Equal(t, []string{"id"}, tracker.Keys())
}

func TestTracker_Reset_PreservesCapacity(t *testing.T) {
	tracker := NewTracker()

	for i := 0; i < 100; i++ {
		_ = tracker.TrackKey("key", uint64(i))
	}

	initialCap := cap(tracker.keyList)

	tracker.Reset()

	require.Equal(t, 0, len(tracker.keyList))
	require.GreaterOrEqual(t, cap(tracker.keyList), initialCap)
}

func TestTracker_HasCollision_AfterCollision(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.TrackKey("name", 0x1234567890abcdef)
	require.False(t, tracker.HasCollision())

	_ = tracker.TrackKey("nmae", 0x1234567890abcdef)
	require.True(t, tracker.HasCollision())

	_ = tracker.TrackKey("age", 0xfedcba0987654321)
	require.True(t, tracker.HasCollision())
}

func TestTracker_MultipleCollisions(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackKey("key1", 0x0001)
	require.NoError(t, err)

	err = tracker.TrackKey("key2", 0x0001)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())

	err = tracker.TrackKey("key3", 0x0002)
	require.NoError(t, err)
	err = tracker.TrackKey("key4", 0x0002)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())

	require.Equal(t, 4, tracker.Count())
}
