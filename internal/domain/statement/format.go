package statement

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const ellipsis = "…"

var (
	titleCaser = cases.Title(language.BrazilianPortuguese)
	monthNames = [...]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
)

// FormatDate formata uma data civil no padrão brasileiro (dd/mm/aaaa).
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateTime formata data e hora (dd/mm/aaaa hh:mm).
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// MonthReference devolve "Março de 2025".
func MonthReference(year int, month time.Month) string {
	return titleCaser.String(monthNames[month-1]) + " de " + strconv.Itoa(year)
}

// FormatBRL formata um valor em reais: 1234.5 → "R$ 1.234,50".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
	return sign + "R$ " + groupThousands(intPart) + "," + frac
}

// groupThousands insere pontos de milhar numa string numérica sem sinal.
// Ex: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// Truncate limita a descrição à largura de exibição, terminando em "…" quando corta.
// A largura conta colunas de terminal, não bytes.
func Truncate(s string, width int) string {
	s = strings.TrimSpace(norm.NFC.String(s))
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}
