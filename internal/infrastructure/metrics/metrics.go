// Package metrics define as métricas Prometheus do serviço.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	appcash "github.com/jhoicas/clube-api/internal/application/cashflow"
)

const namespace = "clube"

var _ appcash.Recorder = (*Metrics)(nil)

// Metrics agrupa os coletores registrados em um Registerer.
type Metrics struct {
	transactions       *prometheus.CounterVec
	transactionAmount  *prometheus.CounterVec
	deletions          prometheus.Counter
	statements         prometheus.Counter
	statementPages     prometheus.Histogram
	httpRequestSeconds *prometheus.HistogramVec
}

// New registra os coletores em reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		transactions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cashflow",
				Name:      "transactions_recorded_total",
				Help:      "Lançamentos registrados por tipo",
			},
			[]string{"tipo"},
		),
		transactionAmount: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cashflow",
				Name:      "transactions_amount_total",
				Help:      "Soma dos valores lançados por tipo, em reais",
			},
			[]string{"tipo"},
		),
		deletions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cashflow",
			Name:      "transactions_deleted_total",
			Help:      "Lançamentos excluídos",
		}),
		statements: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cashflow",
			Name:      "statements_exported_total",
			Help:      "Extratos gerados",
		}),
		statementPages: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cashflow",
			Name:      "statement_pages",
			Help:      "Páginas por extrato gerado",
			Buckets:   []float64{1, 2, 3, 5, 10, 20, 50},
		}),
		httpRequestSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duração das requisições HTTP em segundos",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route", "status_code"},
		),
	}
}

// TransactionRecorded conta um lançamento e soma o valor.
func (m *Metrics) TransactionRecorded(tipo string, valor decimal.Decimal) {
	m.transactions.WithLabelValues(tipo).Inc()
	m.transactionAmount.WithLabelValues(tipo).Add(valor.InexactFloat64())
}

// TransactionDeleted conta uma exclusão.
func (m *Metrics) TransactionDeleted() { m.deletions.Inc() }

// StatementExported conta um extrato e observa o número de páginas.
func (m *Metrics) StatementExported(pages int) {
	m.statements.Inc()
	m.statementPages.Observe(float64(pages))
}

// Middleware mede a duração das requisições pela rota registrada (não pelo path bruto).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		m.httpRequestSeconds.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expõe g no formato texto do Prometheus como handler Fiber.
func Handler(g prometheus.Gatherer) fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return func(c *fiber.Ctx) error {
		h(c.Context())
		return nil
	}
}
