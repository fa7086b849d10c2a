package arguments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

func TestStore_TypedGetters(t *testing.T) {
	s := NewStore()
	s.Set("n", IntValue(-3))
	s.Set("u", UintValue(7))
	s.Set("f", FloatValue(1.5))
	s.Set("s", StringValue("hi"))
	s.Set("b", BoolValue(true))
	s.Set("d", DurationValue(time.Second))

	n, err := s.Int("n")
	require.NoError(t, err)
	require.Equal(t, int64(-3), n)

	u, err := s.Uint("u")
	require.NoError(t, err)
	require.Equal(t, uint64(7), u)

	f, err := s.Float("f")
	require.NoError(t, err)
	require.Equal(t, 1.5, f)

	str, err := s.String("s")
	require.NoError(t, err)
	require.Equal(t, "hi", str)

	b, err := s.Bool("b")
	require.NoError(t, err)
	require.True(t, b)

	d, err := s.Duration("d")
	require.NoError(t, err)
	require.Equal(t, time.Second, d)

	require.Equal(t, []string{"n", "u", "f", "s", "b", "d"}, s.Names())
	require.Equal(t, 6, s.Len())
}

func TestStore_Errors(t *testing.T) {
	s := NewStore()
	s.Set("n", IntValue(1))

	_, err := s.String("n")
	require.EqualError(t, err, `argument "n" is int, not string`)

	_, err = s.Int("missing")
	require.EqualError(t, err, `argument "missing" not provided`)

	require.Equal(t, "fallback", s.StringOr("n", "fallback"))
}

func TestStore_SetKeepsOrder(t *testing.T) {
	s := NewStore()
	s.Set("a", IntValue(1))
	s.Set("b", IntValue(2))
	s.Set("a", IntValue(3))

	require.Equal(t, []string{"a", "b"}, s.Names())
	got, _ := s.Int("a")
	require.Equal(t, int64(3), got)
}

func TestGet_Generic(t *testing.T) {
	s := NewStore()
	s.Set("p", CustomValue(point{1, 2}))
	s.Set("n", IntValue(5))

	p, err := Get[point](s, "p")
	require.NoError(t, err)
	require.Equal(t, point{1, 2}, p)

	n, err := Get[int64](s, "n")
	require.NoError(t, err)
	require.Equal(t, int64(5), n)

	_, err = Get[string](s, "p")
	require.Error(t, err)

	_, err = Get[point](s, "nope")
	require.Error(t, err)
}

func TestStore_NilSafe(t *testing.T) {
	var s *Store
	require.False(t, s.Has("x"))
	require.Equal(t, 0, s.Len())
	require.Nil(t, s.Names())
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{UnitValue(), "()"},
		{IntValue(-4), "-4"},
		{UintValue(4), "4"},
		{FloatValue(2.5), "2.5"},
		{StringValue("x y"), "x y"},
		{BoolValue(false), "false"},
		{DurationValue(90 * time.Second), "1m30s"},
		{CustomValue(point{1, 2}), "{1 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestStore_CloneIsIndependent(t *testing.T) {
	s := NewStore()
	s.Set("a", IntValue(1))

	c := s.Clone()
	c.Set("b", IntValue(2))

	require.False(t, s.Has("b"))
	require.True(t, c.Has("a"))
	require.Equal(t, []string{"a", "b"}, c.Names())

	var nilStore *Store
	require.Equal(t, 0, nilStore.Clone().Len())
}
