package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var s Sequence[string]
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Values())
	assert.Nil(t, s.IndexesOf("a"))

	_, err := s.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestPushFrontAndBack(t *testing.T) {
	s := Of("b")
	s = s.PushFront("a")
	s = s.PushBack("c")

	assert.Equal(t, []string{"a", "b", "c"}, s.Values())
	assert.Equal(t, 3, s.Len())

	head, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "a", head)

	tail, err := s.Get(s.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, "c", tail)
}

func TestInsertShiftsFollowingValues(t *testing.T) {
	base := Of("a", "b", "c")
	for pos := 0; pos <= base.Len(); pos++ {
		got, err := base.Insert(pos, "x")
		require.NoError(t, err, "pos %d", pos)
		require.Equal(t, base.Len()+1, got.Len())

		v, err := got.Get(pos)
		require.NoError(t, err)
		assert.Equal(t, "x", v)

		for i := range base.Len() {
			want, _ := base.Get(i)
			at := i
			if i >= pos {
				at = i + 1
			}
			have, _ := got.Get(at)
			assert.Equal(t, want, have, "pos %d original index %d", pos, i)
		}
	}
}

func TestInsertOutOfRangeLeavesSequence(t *testing.T) {
	base := Of("a", "b")
	for _, pos := range []int{-1, 3, 100} {
		got, err := base.Insert(pos, "x")
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, []string{"a", "b"}, got.Values())
	}
}

func TestRemoveAt(t *testing.T) {
	base := Of("a", "b", "c", "d")
	want := [][]string{
		{"b", "c", "d"},
		{"a", "c", "d"},
		{"a", "b", "d"},
		{"a", "b", "c"},
	}
	for pos, expected := range want {
		got, removed, err := base.RemoveAt(pos)
		require.NoError(t, err)
		assert.Equal(t, expected, got.Values())
		orig, _ := base.Get(pos)
		assert.Equal(t, orig, removed)
	}

	_, _, err := base.RemoveAt(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestPopFrontAndBack(t *testing.T) {
	s := Of(1, 2, 3)

	s, first, err := s.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	s, last, err := s.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 3, last)
	assert.Equal(t, []int{2}, s.Values())

	var empty Sequence[int]
	_, _, err = empty.PopFront()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, _, err = empty.PopBack()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestOlderVersionsAreUnchanged(t *testing.T) {
	v1 := Of("a", "b", "c")
	v2, _ := v1.Insert(1, "x")
	v3, _, _ := v2.RemoveAt(3)
	v4 := v3.PushFront("h")

	assert.Equal(t, []string{"a", "b", "c"}, v1.Values())
	assert.Equal(t, []string{"a", "x", "b", "c"}, v2.Values())
	assert.Equal(t, []string{"a", "x", "b"}, v3.Values())
	assert.Equal(t, []string{"h", "a", "x", "b"}, v4.Values())
}

func TestIndexesOfScansWholeChain(t *testing.T) {
	s := Of("x", "y", "x", "z", "x")
	assert.Equal(t, []int{0, 2, 4}, s.IndexesOf("x"))
	assert.Equal(t, []int{3}, s.IndexesOf("z"))
	assert.Nil(t, s.IndexesOf("missing"))
}

func TestInsertThenRemoveRoundTrip(t *testing.T) {
	starts := []Sequence[string]{
		{},
		Of("a"),
		Of("a", "b", "c", "d", "e"),
		Of("dup", "dup", "dup"),
	}
	for _, start := range starts {
		for pos := 0; pos <= start.Len(); pos++ {
			inserted, err := start.Insert(pos, "new")
			require.NoError(t, err)
			back, removed, err := inserted.RemoveAt(pos)
			require.NoError(t, err)
			assert.Equal(t, "new", removed)
			assert.True(t, back.Equal(start), "start %v pos %d got %v", start.Values(), pos, back.Values())
		}
	}
}

func TestEqual(t *testing.T) {
	a := Of("a", "b")
	assert.True(t, a.Equal(Of("a", "b")))
	assert.False(t, a.Equal(Of("a")))
	assert.False(t, a.Equal(Of("a", "c")))

	shared := a.PushFront("z")
	assert.True(t, shared.Equal(Of("z", "a", "b")))
}

func TestAllStopsEarly(t *testing.T) {
	s := Of(1, 2, 3, 4)
	var seen []int
	for i, v := range s.All() {
		if i == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)
}
