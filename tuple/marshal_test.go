package tuple

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewPoint(1, 2.5, -3))
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2.5, -3]`, string(b))

	b, err = json.Marshal(New(1, 2, 3, 4))
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3, 4]`, string(b))

	b, err = json.Marshal(NewColor(0.1, 0.2, 0.3))
	require.NoError(t, err)
	assert.JSONEq(t, `[0.1, 0.2, 0.3]`, string(b))
}

func TestUnmarshalJSON(t *testing.T) {
	var scene struct {
		Origin    Point  `json:"origin"`
		Direction Vector `json:"direction"`
		Raw       Tuple  `json:"raw"`
		Tint      Color  `json:"tint"`
	}

	err := json.Unmarshal([]byte(`{
		"origin": [0, 1, 0],
		"direction": [1, 1, 0],
		"raw": [1, 2, 3, 4],
		"tint": [1, 0.5, 0]
	}`), &scene)
	require.NoError(t, err)

	assert.True(t, scene.Origin.Eq(NewPoint(0, 1, 0)))
	assert.Equal(t, 1.0, scene.Origin.W())
	assert.True(t, scene.Direction.Eq(NewVector(1, 1, 0)))
	assert.Equal(t, 0.0, scene.Direction.W())
	assert.True(t, scene.Raw.Eq(New(1, 2, 3, 4)))
	assert.True(t, scene.Tint.Eq(NewColor(1, 0.5, 0)))
}

func TestUnmarshalJSONComponentCount(t *testing.T) {
	tests := []struct {
		name string
		dst  json.Unmarshaler
		in   string
	}{
		{"PointWithDiscriminant", new(Point), `[1, 2, 3, 1]`},
		{"VectorTooShort", new(Vector), `[1, 2]`},
		{"TupleTooShort", new(Tuple), `[1, 2, 3]`},
		{"ColorTooLong", new(Color), `[1, 2, 3, 4]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.in), tt.dst)
			assert.ErrorIs(t, err, ErrComponentCount)
		})
	}

	var p Point
	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &p))
}
