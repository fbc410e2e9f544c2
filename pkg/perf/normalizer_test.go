package perf_test

import (
	"encoding/json"
	"testing"

	"github.com/athletiq/athletiq/pkg/perf"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func decodePayload(t *testing.T, raw string) any {
	t.Helper()
	var payload any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestNormalize_FlatList(t *testing.T) {
	payload := decodePayload(t, `[
		{"date": "2023-06-10", "value": 10.94, "discipline": "100m", "wind": 1.4},
		{"date": "2022-05-01", "value": 11.02, "discipline": "100m"},
		{"date": "2023-01-15", "value": 6.81, "discipline": "Saut en longueur"}
	]`)

	points := perf.Normalize(payload)
	require.Len(t, points, 3)

	// sorted ascending by date
	assert.Equal(t, "2022-05-01", points[0].Date)
	assert.Equal(t, "2023-01-15", points[1].Date)
	assert.Equal(t, "2023-06-10", points[2].Date)

	assert.Equal(t, 11.02, points[0].Value)
	assert.Equal(t, "100m", points[0].Discipline)
	assert.Nil(t, points[0].Wind)

	require.NotNil(t, points[2].Wind)
	assert.Equal(t, 1.4, *points[2].Wind)
}

func TestNormalize_MapShapedPayload_DisciplineHint(t *testing.T) {
	payload := decodePayload(t, `{
		"110m haies": [{"date": "2023-07-01", "value": 14.2}],
		"Saut en hauteur": {"date": "2023-07-02", "value": 1.95}
	}`)

	points := perf.Normalize(payload)
	require.Len(t, points, 2)

	assert.Equal(t, "110m haies", points[0].Discipline)
	assert.Equal(t, 14.2, points[0].Value)

	// a single object under a discipline key is accepted too
	assert.Equal(t, "Saut en hauteur", points[1].Discipline)
	assert.Equal(t, 1.95, points[1].Value)
}

func TestNormalize_ExplicitDisciplineWinsOverHint(t *testing.T) {
	payload := decodePayload(t, `{
		"100m": [{"date": "2023-07-01", "value": 10.8, "discipline": "100m salle"}]
	}`)

	points := perf.Normalize(payload)
	require.Len(t, points, 1)
	assert.Equal(t, "100m salle", points[0].Discipline)
}

func TestNormalize_TimePrecisionRecovery(t *testing.T) {
	// a rounded integer summary hides the precise chrono in the raw token
	payload := decodePayload(t, `[
		{"date": "2024-01-01", "value": 6, "performance": "6''70"}
	]`)

	points := perf.Normalize(payload)
	require.Len(t, points, 1)
	assert.InDelta(t, 6.70, points[0].Value, 1e-9)
	assert.Equal(t, "6''70", points[0].RawPerformance)
}

func TestNormalize_EmbeddedDecimalOverride(t *testing.T) {
	payload := decodePayload(t, `[
		{"date": "2024-01-01", "value": 6, "performance": "6,70 en salle"}
	]`)

	points := perf.Normalize(payload)
	require.Len(t, points, 1)
	assert.InDelta(t, 6.70, points[0].Value, 1e-9)
}

func TestNormalize_TimeNotations(t *testing.T) {
	for name, tc := range map[string]struct {
		performance string
		want        float64
	}{
		"minutes seconds hundredths": {"2'03''33", 123.33},
		"colon minutes seconds":      {"2:03.33", 123.33},
		"hours minutes seconds":      {"1:02:03", 3723},
		"seconds hundredths":         {"10''94", 10.94},
		"unicode primes":             {"2′03″33", 123.33},
		"double prime as quote":      {"10\"94", 10.94},
		"wind aside stripped":        {"10''94 (vent +1.5)", 10.94},
	} {
		t.Run(name, func(t *testing.T) {
			points := perf.Normalize([]any{
				map[string]any{"date": "2024-05-05", "performance": tc.performance},
			})
			require.Len(t, points, 1)
			assert.InDelta(t, tc.want, points[0].Value, 1e-9)
		})
	}
}

func TestNormalize_DropInvariant(t *testing.T) {
	gofakeit.Seed(42)
	payload := []any{
		map[string]any{"value": 10.94},                       // no date
		map[string]any{"date": "2023-06-10"},                 // no value source
		map[string]any{"date": "not a date", "value": 10.94}, // unparseable date
		map[string]any{"date": "2023-06-10", "value": "n/a"}, // non-numeric value
		map[string]any{"meeting": gofakeit.City()},           // scraped noise
		"not even an object",
		map[string]any{"date": "2023-06-10", "value": 10.94, "discipline": "100m"},
	}

	points := perf.Normalize(payload)
	require.Len(t, points, 1)
	assert.Equal(t, 10.94, points[0].Value)
}

func TestNormalize_GarbagePayloads(t *testing.T) {
	assert.Empty(t, perf.Normalize(nil))
	assert.Empty(t, perf.Normalize("whoops"))
	assert.Empty(t, perf.Normalize(42.0))
	assert.Empty(t, perf.Normalize(map[string]any{"100m": "not entries"}))
	assert.Empty(t, perf.NormalizeJSON([]byte("{not json")))
}

func TestNormalize_SortIsStableOnEqualDates(t *testing.T) {
	payload := decodePayload(t, `[
		{"date": "2023-06-10", "value": 1, "notes": "first"},
		{"date": "2023-06-10", "value": 2, "notes": "second"},
		{"date": "2023-06-10", "value": 3, "notes": "third"}
	]`)

	points := perf.Normalize(payload)
	require.Len(t, points, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{points[0].Value, points[1].Value, points[2].Value})
}

func TestNormalize_WindExtraction(t *testing.T) {
	for name, tc := range map[string]struct {
		entry map[string]any
		want  *float64
	}{
		"plain numeric wind":     {map[string]any{"wind": 1.4}, ptr(1.4)},
		"signed unit string":     {map[string]any{"wind": "+1.2 m/s"}, ptr(1.2)},
		"negative unit string":   {map[string]any{"wind": "-0.8m/s"}, ptr(-0.8)},
		"vent field":             {map[string]any{"vent": "2,1"}, ptr(2.1)},
		"marker in meeting":      {map[string]any{"meeting": "Finale (vent 1.3 m/s)"}, ptr(1.3)},
		"meeting without marker": {map[string]any{"meeting": "Meeting de Lyon"}, nil},
		"marker in notes":        {map[string]any{"notes": "vent: -1,6"}, ptr(-1.6)},
		// a marker opens a field for inspection but never vouches for an
		// unsigned, unit-less number
		"unsigned unitless number": {map[string]any{"notes": "vent 1.3"}, nil},
		"wind inside performance":  {map[string]any{"performance": "10''94 (+1.5)"}, ptr(1.5)},
		"no wind anywhere":         {map[string]any{}, nil},
	} {
		t.Run(name, func(t *testing.T) {
			entry := map[string]any{"date": "2024-05-05", "value": 10.94}
			for k, v := range tc.entry {
				entry[k] = v
			}
			points := perf.Normalize([]any{entry})
			require.Len(t, points, 1)
			if tc.want == nil {
				assert.Nil(t, points[0].Wind)
			} else {
				require.NotNil(t, points[0].Wind)
				assert.InDelta(t, *tc.want, *points[0].Wind, 1e-9)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	payload := decodePayload(t, `{
		"100m": [
			{"date": "2023-06-10", "value": 10.94, "wind": "+1.2 m/s"},
			{"date": "2024-01-01", "value": 6, "performance": "6''70"}
		],
		"800m": [{"date": "2023-05-02", "performance": "2'03''33"}]
	}`)

	first := perf.Normalize(payload)
	require.Len(t, first, 3)

	// feed the output back in as a flat list
	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	second := perf.NormalizeJSON(encoded)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Date, second[i].Date, "point %d date", i)
		assert.Equal(t, first[i].Value, second[i].Value, "point %d value", i)
		assert.Equal(t, first[i].Discipline, second[i].Discipline, "point %d discipline", i)
		assert.Equal(t, first[i].RawPerformance, second[i].RawPerformance, "point %d raw", i)
	}
}

func ptr(f float64) *float64 {
	return &f
}
