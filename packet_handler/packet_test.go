package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPacket(t *testing.T) {
	p := NewPacket("n1", 3)

	assert.Equal(t, "n1", p.SourceID)
	assert.Equal(t, 3, p.TTL)
	assert.Equal(t, []string{"n1"}, p.Path)
	assert.Equal(t, "n1", p.Current())
	assert.Equal(t, 0, p.Hops())
	assert.NotEmpty(t, p.MessageID)

	other := NewPacket("n1", 3)
	assert.NotEqual(t, p.MessageID, other.MessageID, "each flood gets its own message id")
}

func TestForwardClones(t *testing.T) {
	p := NewPacket("n1", 2)

	a, ok := p.Forward("n2")
	require.True(t, ok)
	b, ok := p.Forward("n3")
	require.True(t, ok)

	assert.Equal(t, []string{"n1"}, p.Path, "original must be untouched")
	assert.Equal(t, []string{"n1", "n2"}, a.Path)
	assert.Equal(t, []string{"n1", "n3"}, b.Path)
	assert.Equal(t, 1, a.TTL)
	assert.Equal(t, p.MessageID, a.MessageID)

	_, ok = a.Forward("n4")
	assert.False(t, ok, "decremented ttl would be zero")
	assert.Equal(t, []string{"n1", "n2"}, a.Path)
}

func TestForwardNeedsPositiveTTLAfterDecrement(t *testing.T) {
	testCases := []struct {
		ttl  int
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{5, true},
	}
	for _, tc := range testCases {
		next, ok := NewPacket("n1", tc.ttl).Forward("n2")
		assert.Equal(t, tc.want, ok, "ttl %d", tc.ttl)
		if ok {
			assert.Equal(t, tc.ttl-1, next.TTL)
			assert.Equal(t, 1, next.Hops())
		}
	}
}

func TestSeenTable(t *testing.T) {
	st := NewSeenTable()

	assert.False(t, st.Has("n1", "m1"))
	assert.True(t, st.Mark("n1", "m1"))
	assert.False(t, st.Mark("n1", "m1"))
	assert.True(t, st.Has("n1", "m1"))
	assert.False(t, st.Has("n1", "m2"))
	assert.False(t, st.Has("n2", "m1"))
	assert.Equal(t, 1, st.Len())
}
