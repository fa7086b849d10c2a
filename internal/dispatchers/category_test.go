package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandCategory_String(t *testing.T) {
	tests := []struct {
		category CommandCategory
		expected string
	}{
		{CategoryUncategorized, "other commands"},
		{CategoryGeneral, "general"},
		{CategoryVariables, "work with variables"},
		{CategoryArithmetic, "arithmetic"},
		{CategoryHistory, "inspect history"},
		{CategoryConfig, "configure verbs"},
		{CategoryCustom, "custom commands"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.category.String())
		})
	}
}

func TestCommandCategory_Unknown(t *testing.T) {
	unknownCategory := CommandCategory(99)
	require.Equal(t, "other commands", unknownCategory.String())
}

func TestCategoryOrder(t *testing.T) {
	order := CategoryOrder()
	require.Len(t, order, 7)
	require.Equal(t, CategoryGeneral, order[0])
	require.Equal(t, CategoryUncategorized, order[len(order)-1])
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want CommandCategory
	}{
		{"general", CategoryGeneral},
		{"Vars", CategoryVariables},
		{" math ", CategoryArithmetic},
		{"history", CategoryHistory},
		{"config", CategoryConfig},
		{"", CategoryCustom},
		{"whatever", CategoryUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseCategory(tt.in))
		})
	}
}
