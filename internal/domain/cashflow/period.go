package cashflow

import (
	"fmt"
	"time"

	"github.com/jhoicas/clube-api/internal/domain"
)

// PeriodFilter é o filtro de listagem do livro-caixa. Campos nil não foram informados.
type PeriodFilter struct {
	Year  *int
	Month *int
	Day   *int
}

// Period é um intervalo de datas civis com limites inclusivos. nil = sem limite.
type Period struct {
	From *time.Time
	To   *time.Time
}

// Bounded informa se o período tem os dois limites.
func (p Period) Bounded() bool { return p.From != nil && p.To != nil }

// Contains informa se a data está dentro do período.
func (p Period) Contains(d time.Time) bool {
	d = DateOf(d)
	if p.From != nil && d.Before(*p.From) {
		return false
	}
	if p.To != nil && d.After(*p.To) {
		return false
	}
	return true
}

// Date monta uma data civil (00:00 UTC).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf descarta horário e fuso, mantendo o dia civil de t.
func DateOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// LastDayOfMonth devolve o último dia do mês pelo calendário (28, 29, 30 ou 31).
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Resolve converte o filtro em período.
//
//   - só ano: 01/01 a 31/12;
//   - ano e mês: primeiro ao último dia real do mês;
//   - ano, mês e dia: a data exata;
//   - nada: sem limites.
//
// Mês ou dia sem ano usam fallbackYear, que o chamador deve tornar explícito.
func (f PeriodFilter) Resolve(fallbackYear int) (Period, error) {
	if f.Year == nil && f.Month == nil && f.Day == nil {
		return Period{}, nil
	}
	if f.Day != nil && f.Month == nil {
		return Period{}, fmt.Errorf("%w: dia exige mês", domain.ErrInvalidInput)
	}

	year := fallbackYear
	if f.Year != nil {
		year = *f.Year
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: ano %d fora do intervalo", domain.ErrInvalidInput, year)
	}

	if f.Month == nil {
		from, to := Date(year, time.January, 1), Date(year, time.December, 31)
		return Period{From: &from, To: &to}, nil
	}
	m := *f.Month
	if m < 1 || m > 12 {
		return Period{}, fmt.Errorf("%w: mês %d inválido", domain.ErrInvalidInput, m)
	}
	month := time.Month(m)
	last := LastDayOfMonth(year, month)

	if f.Day == nil {
		from, to := Date(year, month, 1), Date(year, month, last)
		return Period{From: &from, To: &to}, nil
	}
	d := *f.Day
	if d < 1 || d > last {
		return Period{}, fmt.Errorf("%w: dia %d inválido para %02d/%d", domain.ErrInvalidInput, d, m, year)
	}
	day := Date(year, month, d)
	return Period{From: &day, To: &day}, nil
}

// NeedsFallbackYear informa se Resolve vai usar o ano de fallback.
func (f PeriodFilter) NeedsFallbackYear() bool {
	return f.Year == nil && (f.Month != nil || f.Day != nil)
}
