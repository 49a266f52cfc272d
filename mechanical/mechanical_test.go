package mechanical_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/engmath/materials"
	"github.com/katalvlaran/engmath/mechanical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBareFormulas(t *testing.T) {
	assert.Equal(t, 50.0, mechanical.Force(10, 5))
	assert.Equal(t, 50.0, mechanical.Moment(100, 0.5))
	assert.Equal(t, 20.0, mechanical.KineticEnergy(10, 2))
	assert.Equal(t, 300.0, mechanical.Power(100, 3))
}

func TestWork(t *testing.T) {
	cases := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"aligned", 0, 200},
		{"sixty degrees", 60, 100},
		{"perpendicular", 90, 0},
		{"opposed", 180, -200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, mechanical.Work(20, 10, tc.angle), 1e-9)
		})
	}
}

func TestPressure(t *testing.T) {
	p, err := mechanical.Pressure(200, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, p, 1e-9)

	_, err = mechanical.Pressure(200, 0)
	require.ErrorIs(t, err, mechanical.ErrNonPositive)
}

func TestMomentOfInertia(t *testing.T) {
	i, err := mechanical.MomentOfInertia([]float64{2, 3}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 14.0, i)

	i, err = mechanical.MomentOfInertia(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, i)

	_, err = mechanical.MomentOfInertia([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, mechanical.ErrLengthMismatch)
}

func TestNaturalFrequency(t *testing.T) {
	f, err := mechanical.NaturalFrequency(4*math.Pi*math.Pi, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, f, 1e-12)

	_, err = mechanical.NaturalFrequency(100, 0)
	require.ErrorIs(t, err, mechanical.ErrNonPositive)
	_, err = mechanical.NaturalFrequency(-1, 1)
	require.ErrorIs(t, err, mechanical.ErrNonPositive)
}

func TestElasticDeformation(t *testing.T) {
	steel, err := materials.Lookup("steel")
	require.NoError(t, err)

	// 10 kN on a 2 m bar of 1 cm² steel
	d, err := mechanical.ElasticDeformation(10e3, 2, steel.ElasticModulus, 1e-4)
	require.NoError(t, err)
	assert.InDelta(t, 1e-3, d, 1e-12)

	_, err = mechanical.ElasticDeformation(1, 1, 0, 1)
	require.ErrorIs(t, err, mechanical.ErrNonPositive)
	_, err = mechanical.ElasticDeformation(1, 1, 1, math.NaN())
	require.ErrorIs(t, err, mechanical.ErrNonPositive)
}

func TestConcreteResistance(t *testing.T) {
	got, err := mechanical.ConcreteResistance(30, 2)
	require.NoError(t, err)
	assert.InDelta(t, 6116207.95, got, 0.1)

	c30, err := materials.Lookup("concrete-c30")
	require.NoError(t, err)
	fromCatalog, err := mechanical.ConcreteResistance(c30.CompressiveStrength, 2)
	require.NoError(t, err)
	assert.Equal(t, got, fromCatalog)

	_, err = mechanical.ConcreteResistance(0, 2)
	require.ErrorIs(t, err, mechanical.ErrNonPositive)
}
