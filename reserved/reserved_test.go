package reserved

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReservedWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{word: "function", want: true},
		{word: "class", want: true},
		{word: "return", want: true},
		{word: "Function", want: true},
		{word: "RETURN", want: true},
		{word: "undefined", want: true},
		{word: "bigint", want: true},
		{word: "console", want: true},
		{word: "Array", want: true},
		{word: "array", want: true},
		{word: "JSON", want: true},
		{word: "parseInt", want: true},
		{word: "parseint", want: true},
		{word: "myVariable", want: false},
		{word: "user_name", want: false},
		{word: "", want: false},
		{word: "functions", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReservedWord(tt.word))
		})
	}
}

func TestSet_AddRemove(t *testing.T) {
	s := NewSet("myKeyword")
	assert.True(t, s.Contains("MYKEYWORD"))
	assert.True(t, s.Contains("function"))

	s.Remove("Function", "myKeyword")
	assert.False(t, s.Contains("function"))
	assert.False(t, s.Contains("myKeyword"))

	// the built-in set is unaffected
	assert.True(t, IsReservedWord("function"))
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set
	assert.False(t, s.Contains("anything"))
	assert.Equal(t, 0, s.Len())

	s.Add("", "Foo")
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("foo"))
}

func TestSet_Nil(t *testing.T) {
	var s *Set
	assert.False(t, s.Contains("function"))
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Words())
	assert.Equal(t, 0, s.Clone().Len())
}

func TestDefault_IsIndependentCopy(t *testing.T) {
	d := Default()
	require.Equal(t, NewSet().Len(), d.Len())

	d.Remove("class")
	assert.False(t, d.Contains("class"))
	assert.True(t, Default().Contains("class"))
	assert.True(t, IsReservedWord("class"))
}

func TestEmpty(t *testing.T) {
	s := Empty()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("function"))
}

func TestSet_Words(t *testing.T) {
	s := Empty()
	s.Add("Zeta", "alpha", "Mid")
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, s.Words())
}
