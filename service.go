package schedsim

import (
	"context"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model/report"
	"github.com/viant/schedsim/service/banker"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/dao/criteria"
	"github.com/viant/schedsim/service/dao/store"
	"github.com/viant/schedsim/service/scheduler"
	"github.com/viant/schedsim/service/workload"
	"github.com/viant/schedsim/tracing"
)

type Service struct {
	runtime       *Runtime
	config        *Config
	logger        *slog.Logger
	fs            afs.Service
	metaBaseURL   string
	metaFsOptions []storage.Option
	listeners     []scheduler.Listener
	tracingErr    error
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	if s.tracingErr != nil {
		s.logger.Warn("tracing disabled", "error", s.tracingErr)
	}
	s.runtime.config = s.config
	s.runtime.logger = s.logger
	s.runtime.scheduler = scheduler.New(scheduler.WithListeners(s.listeners...))
	s.runtime.banker = banker.New()
	s.runtime.workload = workload.New(s.fs, s.metaBaseURL, s.metaFsOptions...)
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.runtime.reportDAO == nil {
		s.runtime.reportDAO = NewReportStore()
	}
}

// Runtime returns the runtime exposing simulation operations.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Shutdown flushes spans and closes the trace output opened by WithTracing.
func (s *Service) Shutdown(ctx context.Context) error {
	return tracing.Shutdown(ctx)
}

// NewContext returns ctx carrying the service logger.
func (s *Service) NewContext(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, s.logger)
}

// NewReportStore creates an in-memory report store; List accepts a "Policy"
// parameter matching policy kinds.
func NewReportStore() dao.Service[string, report.Report] {
	return store.NewMemoryStore[string, report.Report](
		func(r *report.Report) string { return r.ID },
		store.WithMatcher[string, report.Report](func(r *report.Report, parameters []*dao.Parameter) bool {
			return criteria.Match("Policy", r.Kind(), parameters)
		}),
	)
}

func New(options ...Option) *Service {
	ret := &Service{runtime: &Runtime{}}
	ret.init(options)
	return ret
}
