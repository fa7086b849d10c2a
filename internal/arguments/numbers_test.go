package arguments

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/verbs/internal/cursor"
)

func parse(t *testing.T, p Parser, input string) (Value, *cursor.Cursor, error) {
	t.Helper()
	c := cursor.New(input)
	v, err := p.Parse(c)
	return v, c, err
}

func requireKind(t *testing.T, err error, want cursor.Kind) *cursor.ParseError {
	t.Helper()
	require.Error(t, err)
	var pe *cursor.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, want, pe.Kind, "got %v", err)
	return pe
}

func TestUint(t *testing.T) {
	tests := []struct {
		name     string
		bits     int
		input    string
		want     uint64
		wantRest string
		wantErr  bool
	}{
		{name: "simple", bits: 32, input: "42", want: 42},
		{name: "stops at space", bits: 32, input: "42 rest", want: 42, wantRest: " rest"},
		{name: "stops at letter", bits: 32, input: "7abc", want: 7, wantRest: "abc"},
		{name: "max u8", bits: 8, input: "255", want: 255},
		{name: "overflow u8", bits: 8, input: "256", wantErr: true},
		{name: "empty", bits: 32, input: "", wantErr: true},
		{name: "letters", bits: 32, input: "abc", wantErr: true},
		{name: "negative", bits: 32, input: "-1", wantErr: true},
		{name: "max u64", bits: 64, input: "18446744073709551615", want: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, err := parse(t, Uint(tt.bits), tt.input)
			if tt.wantErr {
				pe := requireKind(t, err, cursor.BadArgument)
				require.Equal(t, 0, pe.Offset)
				return
			}
			require.NoError(t, err)
			got, ok := v.AsUint()
			require.True(t, ok)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantRest, c.Rest())
		})
	}
}

func TestUint_OverflowCause(t *testing.T) {
	_, _, err := parse(t, Uint(8), "300")
	require.True(t, errors.Is(err, strconv.ErrRange))
}

func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		bits    int
		input   string
		want    int64
		wantErr bool
	}{
		{name: "positive", bits: 32, input: "17", want: 17},
		{name: "negative", bits: 32, input: "-17", want: -17},
		{name: "min i8", bits: 8, input: "-128", want: -128},
		{name: "overflow i8", bits: 8, input: "128", wantErr: true},
		{name: "bare minus", bits: 32, input: "-", wantErr: true},
		{name: "minus then letters", bits: 32, input: "-x", wantErr: true},
		{name: "plus not accepted", bits: 32, input: "+3", wantErr: true},
		{name: "min i64", bits: 64, input: "-9223372036854775808", want: math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _, err := parse(t, Int(tt.bits), tt.input)
			if tt.wantErr {
				requireKind(t, err, cursor.BadArgument)
				return
			}
			require.NoError(t, err)
			got, ok := v.AsInt()
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInt_RoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, math.MaxInt32, math.MinInt32} {
		v, c, err := parse(t, Int(32), strconv.FormatInt(n, 10))
		require.NoError(t, err)
		require.True(t, c.AtEnd())
		got, _ := v.AsInt()
		require.Equal(t, n, got)
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     float64
		wantRest string
		wantErr  bool
	}{
		{name: "integer", input: "3", want: 3},
		{name: "fraction", input: "3.25", want: 3.25},
		{name: "negative", input: "-0.5", want: -0.5},
		{name: "leading dot", input: ".5", want: 0.5},
		{name: "trailing dot", input: "2.", want: 2},
		{name: "second dot terminates", input: "1.2.3", want: 1.2, wantRest: ".3"},
		{name: "empty", input: "", wantErr: true},
		{name: "bare minus", input: "-", wantErr: true},
		{name: "bare dot", input: ".", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, err := parse(t, Float(64), tt.input)
			if tt.wantErr {
				requireKind(t, err, cursor.BadArgument)
				return
			}
			require.NoError(t, err)
			got, ok := v.AsFloat()
			require.True(t, ok)
			require.InDelta(t, tt.want, got, 1e-12)
			require.Equal(t, tt.wantRest, c.Rest())
		})
	}
}

func TestNumericIdentifiers(t *testing.T) {
	require.Equal(t, "u32", Uint(32).Identifier())
	require.Equal(t, "i8", Int(8).Identifier())
	require.Equal(t, "f64", Float(64).Identifier())
}

func TestUnsupportedWidthPanics(t *testing.T) {
	require.Panics(t, func() { Int(12) })
	require.Panics(t, func() { Float(16) })
}
