package cashflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clube-api/internal/domain"
	"github.com/jhoicas/clube-api/internal/domain/cashflow"
)

func ptr(v int) *int { return &v }

func TestResolve_SoAno(t *testing.T) {
	p, err := cashflow.PeriodFilter{Year: ptr(2025)}.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, cashflow.Date(2025, time.January, 1), *p.From)
	assert.Equal(t, cashflow.Date(2025, time.December, 31), *p.To)
}

func TestResolve_FevereiroBissextoENaoBissexto(t *testing.T) {
	leap, err := cashflow.PeriodFilter{Year: ptr(2024), Month: ptr(2)}.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, cashflow.Date(2024, time.February, 1), *leap.From)
	assert.Equal(t, cashflow.Date(2024, time.February, 29), *leap.To)

	common, err := cashflow.PeriodFilter{Year: ptr(2025), Month: ptr(2)}.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, cashflow.Date(2025, time.February, 28), *common.To)
}

func TestResolve_MesesDe30e31Dias(t *testing.T) {
	abr, err := cashflow.PeriodFilter{Year: ptr(2025), Month: ptr(4)}.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, 30, abr.To.Day())

	dez, err := cashflow.PeriodFilter{Year: ptr(2025), Month: ptr(12)}.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, cashflow.Date(2025, time.December, 31), *dez.To)
}

func TestResolve_DiaExato(t *testing.T) {
	p, err := cashflow.PeriodFilter{Year: ptr(2025), Month: ptr(3), Day: ptr(10)}.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, *p.From, *p.To)
	assert.Equal(t, cashflow.Date(2025, time.March, 10), *p.From)
}

func TestResolve_SemFiltroNaoLimita(t *testing.T) {
	p, err := cashflow.PeriodFilter{}.Resolve(2030)
	require.NoError(t, err)
	assert.Nil(t, p.From)
	assert.Nil(t, p.To)
	assert.False(t, p.Bounded())
	assert.True(t, p.Contains(cashflow.Date(1999, time.January, 1)))
}

func TestResolve_MesSemAnoUsaFallback(t *testing.T) {
	f := cashflow.PeriodFilter{Month: ptr(6)}
	assert.True(t, f.NeedsFallbackYear())

	p, err := f.Resolve(2026)
	require.NoError(t, err)
	assert.Equal(t, cashflow.Date(2026, time.June, 1), *p.From)
	assert.Equal(t, cashflow.Date(2026, time.June, 30), *p.To)
}

func TestResolve_Invalidos(t *testing.T) {
	cases := map[string]cashflow.PeriodFilter{
		"dia sem mês":        {Year: ptr(2025), Day: ptr(3)},
		"mês 13":             {Year: ptr(2025), Month: ptr(13)},
		"mês 0":              {Year: ptr(2025), Month: ptr(0)},
		"29/02 não bissexto": {Year: ptr(2025), Month: ptr(2), Day: ptr(29)},
		"dia 0":              {Year: ptr(2025), Month: ptr(1), Day: ptr(0)},
		"ano 0":              {Year: ptr(0)},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.Resolve(2025)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPeriod_ContainsInclusivo(t *testing.T) {
	p, err := cashflow.PeriodFilter{Year: ptr(2025), Month: ptr(3)}.Resolve(0)
	require.NoError(t, err)
	assert.True(t, p.Contains(cashflow.Date(2025, time.March, 1)))
	assert.True(t, p.Contains(time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(cashflow.Date(2025, time.April, 1)))
	assert.False(t, p.Contains(cashflow.Date(2025, time.February, 28)))
}
