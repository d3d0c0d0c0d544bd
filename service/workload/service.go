package workload

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/model/resource"
	"github.com/viant/schedsim/model/types"
	"github.com/viant/schedsim/service/meta"
	"gopkg.in/yaml.v3"
)

// Workload is the YAML representation of a process list.
type Workload struct {
	Processes []*process.Process `yaml:"processes"`
}

// Service loads workloads and resource snapshots.
type Service struct {
	meta *meta.Service
}

// New creates a workload service; relative URLs resolve against baseURL.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{meta: meta.New(fs, baseURL, options...)}
}

// Load reads a CSV or YAML workload, keeping the input order.
func (s *Service) Load(ctx context.Context, URL string) ([]*process.Process, error) {
	data, err := s.meta.Download(ctx, URL)
	if err != nil {
		return nil, err
	}
	var ret []*process.Process
	if isYAML(URL) {
		ret, err = decodeYAML(data)
	} else {
		ret, err = decodeCSV(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load workload %v: %w", URL, err)
	}
	logging.FromContext(ctx).Debug("workload loaded", "url", URL, "processes", len(ret))
	return ret, nil
}

// LoadResources reads a YAML resource snapshot with available, allocation
// and max entries. The snapshot is validated.
func (s *Service) LoadResources(ctx context.Context, URL string) (*resource.State, error) {
	state := &resource.State{}
	if err := s.meta.Load(ctx, URL, state); err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load resources %v: %w", URL, err)
	}
	return state, nil
}

// SaveResources writes a snapshot as YAML.
func (s *Service) SaveResources(ctx context.Context, URL string, state *resource.State) error {
	return s.meta.Save(ctx, URL, state)
}

// Save writes processes as CSV, or YAML when URL has a YAML extension.
func (s *Service) Save(ctx context.Context, URL string, processes []*process.Process) error {
	if isYAML(URL) {
		return s.meta.Save(ctx, URL, &Workload{Processes: processes})
	}
	data, err := encodeCSV(processes)
	if err != nil {
		return err
	}
	return s.meta.Upload(ctx, URL, data)
}

func decodeYAML(data []byte) ([]*process.Process, error) {
	aWorkload := &Workload{}
	if err := yaml.Unmarshal(data, aWorkload); err != nil {
		return nil, types.NewConfigurationError("%v", err)
	}
	if len(aWorkload.Processes) == 0 {
		return nil, types.NewConfigurationError("workload has no processes")
	}
	for i, p := range aWorkload.Processes {
		if p == nil {
			return nil, types.NewConfigurationError("process #%d is empty", i)
		}
		p.Reset()
	}
	return aWorkload.Processes, nil
}

func isYAML(URL string) bool {
	switch strings.ToLower(path.Ext(URL)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
