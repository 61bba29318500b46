package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTable = Table[string]{
	{Keywords: []string{"habit", "productivity"}, Value: "productivity"},
	{Keywords: []string{"tech", "phone"}, Value: "tech"},
}

func TestTable_Match(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"FirstKeyword", "Morning HABITS", "productivity", true},
		{"SecondRule", "Charging your Phone", "tech", true},
		{"FirstRuleWins", "phone habit", "productivity", true},
		{"NoMatch", "cooking", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := testTable.Match(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "generic", testTable.MatchOr("cooking", "generic"))
}

func TestTable_MatchAll(t *testing.T) {
	assert.Equal(t, []string{"productivity", "tech"}, testTable.MatchAll("tech tips", "new habit"))
	assert.Equal(t, []string{}, testTable.MatchAll("nothing"))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"I", "tried", "5", "habits"}, Tokens("I tried 5 habits..."))
	assert.Equal(t, []string{}, Tokens(" -- "))
}

func TestTruncate(t *testing.T) {
	short := "short"
	assert.Equal(t, short, Truncate(short, 60, 57))

	long := "This is a very long hook sentence that certainly goes past sixty chars"
	got := Truncate(long, 60, 57)
	assert.Len(t, []rune(got), 60)
	assert.True(t, len(got) <= 60)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "productivity", FirstWord("Productivity hacks"))
	assert.Equal(t, "", FirstWord("  "))
	assert.Equal(t, "Soothing", Capitalize("sOOTHING"))
	assert.Equal(t, "a, b and c", JoinAnd([]string{"a", "b", "c"}))
	assert.Equal(t, "a and b", JoinAnd([]string{"a", "b"}))
	assert.Equal(t, "a", JoinAnd([]string{"a"}))
}
