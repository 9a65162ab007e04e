package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contexD/ray-tracer-challenge/projectile"
	"github.com/contexD/ray-tracer-challenge/tuple"
)

func TestConfig(t *testing.T) {
	conf, err := LoadConfig("../config.hjson")
	require.NoError(t, err, "Failed to load config")

	if conf.Gravity.Magnitude() == 0 {
		t.Fatalf("Missing gravity")
	}

	def := Default()
	assert.True(t, conf.Position.Eq(def.Position))
	assert.True(t, conf.Velocity.Eq(def.Velocity))
	assert.True(t, conf.Gravity.Eq(def.Gravity))
	assert.True(t, conf.Wind.Eq(def.Wind))
	assert.Equal(t, 10000, conf.MaxTicks)
	assert.Equal(t, []float64{1, 2, 5, 11.25}, conf.Sweep.Speeds)
	assert.Equal(t, 4, conf.Sweep.Workers)

	f, err := projectile.Simulate(conf.Projectile(), conf.Environment(), conf.MaxTicks, nil)
	require.NoError(t, err)
	assert.Equal(t, 17, f.Ticks)
}

func TestLoadYAML(t *testing.T) {
	conf, err := LoadConfig("testdata/windy.yaml")
	require.NoError(t, err)

	assert.True(t, conf.Velocity.Eq(tuple.NewVector(1, 1.8, 0)))
	assert.Equal(t, 11.25, conf.Speed)
	assert.True(t, conf.Wind.Eq(tuple.NewVector(-0.05, 0, 0)))
	assert.Equal(t, []float64{5, 10}, conf.Sweep.Speeds)

	// unset keys keep their defaults
	assert.True(t, conf.Position.Eq(tuple.NewPoint(0, 1, 0)))
	assert.True(t, conf.Gravity.Eq(tuple.NewVector(0, -0.1, 0)))
	assert.Equal(t, projectile.DefaultMaxTicks, conf.MaxTicks)

	assert.InDelta(t, 11.25, conf.Projectile().Velocity.Magnitude(), 1e-9)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("testdata/missing.hjson")
	assert.Error(t, err)

	_, err = LoadConfig("testdata/bad-position.hjson")
	assert.ErrorIs(t, err, tuple.ErrComponentCount)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"NegativeTicks", `{max-ticks: -1}`},
		{"NegativeWorkers", `{sweep: {workers: -2}}`},
		{"ZeroVelocity", `{velocity: [0, 0, 0]}`},
		{"ZeroSpeed", `{speed: 0}`},
		{"BadSweepSpeed", `{sweep: {speeds: [1, -3]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHJSON([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}
