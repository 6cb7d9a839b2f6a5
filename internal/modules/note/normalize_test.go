package note

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohit273848/travel-notes-app/internal/models"
)

func TestNormalizePlace_NameResolution(t *testing.T) {
	tests := []struct {
		name     string
		raw      *PlaceInput
		expected string
	}{
		{
			name:     "explicit name wins",
			raw:      &PlaceInput{Name: "Goa", DisplayName: "Panaji, Goa, India"},
			expected: "Goa",
		},
		{
			name:     "display name falls back to first comma segment",
			raw:      &PlaceInput{DisplayName: "Goa, India"},
			expected: "Goa",
		},
		{
			name:     "display name without comma used whole",
			raw:      &PlaceInput{DisplayName: "Goa"},
			expected: "Goa",
		},
		{
			name:     "no name and no display name",
			raw:      &PlaceInput{City: "Panaji"},
			expected: models.UnknownPlaceName,
		},
		{
			name:     "whitespace-only name",
			raw:      &PlaceInput{Name: "   "},
			expected: models.UnknownPlaceName,
		},
		{
			name:     "nil input",
			raw:      nil,
			expected: models.UnknownPlaceName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePlace(tt.raw).Name)
		})
	}
}

func TestNormalizePlace_AddressFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		raw     *PlaceInput
		city    string
		state   string
		country string
	}{
		{
			name:    "top-level fields win over address",
			raw:     &PlaceInput{Name: "x", City: "Panaji", State: "Goa", Country: "India", Address: &placeAddress{City: "Other"}},
			city:    "Panaji",
			state:   "Goa",
			country: "India",
		},
		{
			name:    "address city",
			raw:     &PlaceInput{Name: "x", Address: &placeAddress{City: "Panaji", State: "Goa", Country: "India"}},
			city:    "Panaji",
			state:   "Goa",
			country: "India",
		},
		{
			name: "address town when city absent",
			raw:  &PlaceInput{Name: "x", Address: &placeAddress{Town: "Mapusa"}},
			city: "Mapusa",
		},
		{
			name: "address village when city and town absent",
			raw:  &PlaceInput{Name: "x", Address: &placeAddress{Village: "Assagao"}},
			city: "Assagao",
		},
		{
			name: "everything absent degrades to empty strings",
			raw:  &PlaceInput{Name: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePlace(tt.raw)
			assert.Equal(t, tt.city, got.City)
			assert.Equal(t, tt.state, got.State)
			assert.Equal(t, tt.country, got.Country)
		})
	}
}

func TestNormalizePlace_Coordinates(t *testing.T) {
	fromJSON := func(t *testing.T, raw string) *PlaceInput {
		t.Helper()
		var p PlaceInput
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		return &p
	}

	t.Run("numeric lat and lng", func(t *testing.T) {
		got := NormalizePlace(fromJSON(t, `{"name":"Goa","lat":15.49,"lng":73.82}`))
		require.NotNil(t, got.Lat)
		require.NotNil(t, got.Lng)
		assert.InDelta(t, 15.49, *got.Lat, 1e-9)
		assert.InDelta(t, 73.82, *got.Lng, 1e-9)
	})

	t.Run("string coordinates are coerced", func(t *testing.T) {
		got := NormalizePlace(fromJSON(t, `{"name":"Goa","lat":"15.49","lng":"73.82"}`))
		require.NotNil(t, got.Lat)
		assert.InDelta(t, 15.49, *got.Lat, 1e-9)
	})

	t.Run("lon is the fallback longitude key", func(t *testing.T) {
		got := NormalizePlace(fromJSON(t, `{"name":"Goa","lat":"15.49","lon":"73.82"}`))
		require.NotNil(t, got.Lng)
		assert.InDelta(t, 73.82, *got.Lng, 1e-9)
	})

	t.Run("lng wins over lon when both present", func(t *testing.T) {
		got := NormalizePlace(fromJSON(t, `{"name":"Goa","lng":1.0,"lon":2.0}`))
		require.NotNil(t, got.Lng)
		assert.InDelta(t, 1.0, *got.Lng, 1e-9)
	})

	t.Run("absent coordinates stay null, never NaN or zero", func(t *testing.T) {
		got := NormalizePlace(fromJSON(t, `{"name":"Goa"}`))
		assert.Nil(t, got.Lat)
		assert.Nil(t, got.Lng)
	})

	t.Run("unparseable coordinates stay null", func(t *testing.T) {
		got := NormalizePlace(fromJSON(t, `{"name":"Goa","lat":"north-ish","lng":""}`))
		assert.Nil(t, got.Lat)
		assert.Nil(t, got.Lng)
	})
}

func TestNormalizePlace_Source(t *testing.T) {
	assert.Equal(t, models.DefaultPlaceSource, NormalizePlace(&PlaceInput{Name: "x"}).Source)
	assert.Equal(t, "manual", NormalizePlace(&PlaceInput{Name: "x", Source: "manual"}).Source)
}

func TestPlaceInput_UnmarshalPlainString(t *testing.T) {
	var p PlaceInput
	require.NoError(t, json.Unmarshal([]byte(`"Old Goa Church"`), &p))
	assert.Equal(t, "Old Goa Church", p.Name)

	got := NormalizePlace(&p)
	assert.Equal(t, "Old Goa Church", got.Name)
	assert.Nil(t, got.Lat)
}

func TestLooseFloat_NeverErrors(t *testing.T) {
	tests := []struct {
		raw      string
		expected *float64
	}{
		{`12.5`, ptr(12.5)},
		{`"12.5"`, ptr(12.5)},
		{`"-0.75"`, ptr(-0.75)},
		{`null`, nil},
		{`""`, nil},
		{`"abc"`, nil},
		{`true`, nil},
		{`{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f LooseFloat
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			if tt.expected == nil {
				assert.Nil(t, f.Value)
			} else {
				require.NotNil(t, f.Value)
				assert.InDelta(t, *tt.expected, *f.Value, 1e-9)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
