package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendPreservesInsertionOrder(t *testing.T) {
	s := newStore()
	for _, id := range []string{"a", "b", "c"} {
		s.append(Notification{ID: id})
	}

	snap := s.snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "a", snap[0].ID)
	assert.Equal(t, "b", snap[1].ID)
	assert.Equal(t, "c", snap[2].ID)
}

func TestStore_Remove(t *testing.T) {
	t.Run("removes matching record", func(t *testing.T) {
		s := newStore()
		s.append(Notification{ID: "a"})
		s.append(Notification{ID: "b"})
		s.append(Notification{ID: "c"})

		assert.True(t, s.remove("b"))

		snap := s.snapshot()
		require.Len(t, snap, 2)
		assert.Equal(t, "a", snap[0].ID)
		assert.Equal(t, "c", snap[1].ID)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := newStore()
		s.append(Notification{ID: "a"})

		assert.False(t, s.remove("missing"))
		assert.Equal(t, 1, s.len())
	})

	t.Run("double removal is a no-op", func(t *testing.T) {
		s := newStore()
		s.append(Notification{ID: "a"})

		assert.True(t, s.remove("a"))
		assert.False(t, s.remove("a"))
		assert.Equal(t, 0, s.len())
	})
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := newStore()
	s.append(Notification{ID: "a", Message: "original"})

	snap := s.snapshot()
	snap[0].Message = "mutated"

	assert.Equal(t, "original", s.snapshot()[0].Message)
}
