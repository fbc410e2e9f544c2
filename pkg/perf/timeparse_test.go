package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChrono(t *testing.T) {
	for token, want := range map[string]float64{
		"1:02:03":   3723,
		"1:02:03.5": 3723.5,
		"2:03.33":   123.33,
		"2:03,33":   123.33,
		"2'03''33":  123.33,
		"2'03":      123,
		"10''94":    10.94,
		"45''":      45,
		"12.34":     12.34,
		"12,34":     12.34,
	} {
		t.Run(token, func(t *testing.T) {
			got, ok := parseChrono(token)
			require.True(t, ok)
			assert.InDelta(t, want, got, 1e-9)
		})
	}

	for _, token := range []string{"", "abc", "1:2:3:4", "x:10"} {
		t.Run("invalid "+token, func(t *testing.T) {
			_, ok := parseChrono(token)
			assert.False(t, ok)
		})
	}
}

func TestCleanToken(t *testing.T) {
	assert.Equal(t, "10''94", cleanToken("10′′94 (vent +1.5)"))
	assert.Equal(t, `10"94`, cleanToken("10″94"))
	assert.Equal(t, "6,70", cleanToken(" 6,70 "))
}

func TestExtractTimeToken(t *testing.T) {
	assert.Equal(t, "1:02:03.5", extractTimeToken("chrono 1:02:03.5 final"))
	assert.Equal(t, "2:03.33", extractTimeToken("800m en 2:03.33"))
	assert.Equal(t, "2'03''33", extractTimeToken("2'03''33 record"))
	assert.Equal(t, "10''94", extractTimeToken("10''94"))
	// no pattern: the whole string is handed to the parser
	assert.Equal(t, "plain", extractTimeToken("plain"))
}

func TestLooksLikeTime(t *testing.T) {
	assert.True(t, looksLikeTime("1:45"))
	assert.True(t, looksLikeTime("10''94"))
	assert.True(t, looksLikeTime("2'03"))
	assert.True(t, looksLikeTime(`10"94`))
	assert.False(t, looksLikeTime("6,70"))
	assert.False(t, looksLikeTime("rien d'anormal"))
}

func TestParseDate(t *testing.T) {
	for _, valid := range []string{
		"2023-06-10",
		"2023-06-10T15:04:05",
		"2023-06-10T15:04:05Z",
		"2023-06-10 15:04:05",
		"2023/06/10",
	} {
		_, ok := parseDate(valid)
		assert.True(t, ok, valid)
	}
	for _, invalid := range []string{"", "soon", "10/06/23"} {
		_, ok := parseDate(invalid)
		assert.False(t, ok, invalid)
	}
}
