package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func getStorage() *Storage {
	return New().
		Add("Foo", "bar").
		Add("Hello", "World").
		Add("Lorem", "ipsum").
		Add("hello", "Pavlo")
}

func TestStorage(t *testing.T) {
	t.Run("get is case-insensitive and returns first match", func(t *testing.T) {
		s := getStorage()

		value, found := s.Get("HELLO")
		require.True(t, found)
		require.Equal(t, "World", value)
	})

	t.Run("values preserve arrival order", func(t *testing.T) {
		s := getStorage()

		require.Equal(t, []string{"World", "Pavlo"}, s.Values("hello"))
		require.Nil(t, s.Values("nonexistent"))
	})

	t.Run("keys are unique, first spelling wins", func(t *testing.T) {
		s := getStorage()

		require.Equal(t, []string{"Foo", "Hello", "Lorem"}, s.Keys())
	})

	t.Run("value or default", func(t *testing.T) {
		s := getStorage()

		require.Equal(t, "bar", s.Value("foo"))
		require.Empty(t, s.Value("nonexistent"))
		require.Equal(t, "fallback", s.ValueOr("nonexistent", "fallback"))
	})

	t.Run("has", func(t *testing.T) {
		s := getStorage()

		require.True(t, s.Has("LOREM"))
		require.False(t, s.Has("dolor"))
	})

	t.Run("order and duplicates are preserved", func(t *testing.T) {
		want := []Pair{
			{"Foo", "bar"},
			{"Hello", "World"},
			{"Lorem", "ipsum"},
			{"hello", "Pavlo"},
		}

		require.Equal(t, want, getStorage().Unwrap())
	})

	t.Run("iter walks pairs in arrival order", func(t *testing.T) {
		iterator := getStorage().Iter()

		var got []Pair
		for {
			pair, cont := iterator.Next()
			if !cont {
				break
			}

			got = append(got, pair)
		}

		require.Equal(t, getStorage().Unwrap(), got)
		require.True(t, iterator.Stopped())
	})

	t.Run("iter break stops iteration", func(t *testing.T) {
		iterator := getStorage().Iter()

		pair, cont := iterator.Next()
		require.True(t, cont)
		require.Equal(t, Pair{"Foo", "bar"}, pair)

		iterator.Break()
		_, cont = iterator.Next()
		require.False(t, cont)
	})

	t.Run("clone is independent", func(t *testing.T) {
		s := getStorage()
		cloned := s.Clone()
		s.Clear()

		require.True(t, s.Empty())
		require.Equal(t, 4, cloned.Len())
		require.Equal(t, "bar", cloned.Value("Foo"))
	})

	t.Run("clear keeps instance usable", func(t *testing.T) {
		s := getStorage().Clear()
		require.Equal(t, 0, s.Len())

		s.Add("Connection", "Upgrade")
		require.Equal(t, "Upgrade", s.Value("connection"))
	})
}
