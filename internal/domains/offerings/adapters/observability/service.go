package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/domains/offerings/ports"
)

const tracerName = "github.com/rotafacil/transit-api/internal/domains/offerings/adapters/observability/service"

// Service decorates the offering service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core offering service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) Search(ctx context.Context, filters domain.SearchFilters, page, pageSize int) ([]domain.SearchResultRow, error) {
	ctx, span := s.tracer.Start(ctx, "OfferingService.Search", trace.WithAttributes(
		attribute.Int("offering.search.page", page),
		attribute.Int("offering.search.page_size", pageSize),
		attribute.Bool("offering.search.filtered", !filters.Empty()),
	))
	defer span.End()
	rows, err := s.inner.Search(ctx, filters, page, pageSize)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "offering search failed")
	}
	span.SetAttributes(attribute.Int("offering.search.rows", len(rows)))
	s.metrics.recordSearch(ctx)
	return rows, nil
}

func (s *Service) Create(ctx context.Context, params domain.CreateParams) (*domain.Offering, error) {
	ctx, span := s.tracer.Start(ctx, "OfferingService.Create", trace.WithAttributes(
		attribute.String("offering.carrier_id", params.CarrierID),
		attribute.String("offering.route_id", params.RouteID),
	))
	defer span.End()
	result, err := s.inner.Create(ctx, params)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create offering",
			slog.String("carrier_id", params.CarrierID),
			slog.String("route_id", params.RouteID))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "offering created", slog.String("offering_id", result.ID))
	return result, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

type serviceMetrics struct {
	searches metric.Int64Counter
	created  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	searches, _ := m.Int64Counter("offerings.service.searches", metric.WithDescription("Number of offering searches served"))
	created, _ := m.Int64Counter("offerings.service.created", metric.WithDescription("Number of offerings created"))
	return serviceMetrics{searches: searches, created: created}
}

func (m serviceMetrics) recordSearch(ctx context.Context) {
	if m.searches != nil {
		m.searches.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.created != nil {
		m.created.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ ports.Service = (*Service)(nil)
