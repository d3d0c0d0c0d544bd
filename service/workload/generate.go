package workload

import (
	"context"
	"fmt"

	"github.com/viant/afs/url"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/model/resource"
)

// Sample file names written by Generate.
const (
	FCFSSample    = "fcfs.csv"
	SJFSample     = "sjf.csv"
	RRSample      = "rr.csv"
	CompareSample = "compare.csv"
	BankerSample  = "banker.yaml"
)

// Samples returns the canonical textbook workloads keyed by file name.
func Samples() map[string][]*process.Process {
	return map[string][]*process.Process{
		FCFSSample: {
			process.New("P1", 0, 8),
			process.New("P2", 1, 4),
			process.New("P3", 2, 9),
			process.New("P4", 3, 5),
		},
		SJFSample: {
			process.New("P1", 0, 7),
			process.New("P2", 2, 4),
			process.New("P3", 4, 1),
			process.New("P4", 5, 4),
		},
		RRSample: {
			process.New("P1", 0, 10),
			process.New("P2", 1, 5),
			process.New("P3", 2, 8),
			process.New("P4", 3, 2),
		},
		CompareSample: {
			process.New("P1", 0, 6),
			process.New("P2", 1, 3),
			process.New("P3", 2, 8),
			process.New("P4", 3, 2),
			process.New("P5", 20, 4),
			process.New("P6", 21, 1),
		},
	}
}

// BankerSampleState returns the classic five process, three resource snapshot.
func BankerSampleState() *resource.State {
	return resource.New(
		[]int{3, 3, 2},
		[][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2}},
		[][]int{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}, {2, 2, 2}, {4, 3, 3}},
	)
}

// Generate writes the sample workloads and resource snapshot under baseURL
// and returns the written URLs.
func (s *Service) Generate(ctx context.Context, baseURL string) ([]string, error) {
	var ret []string
	samples := Samples()
	for _, name := range []string{FCFSSample, SJFSample, RRSample, CompareSample} {
		URL := url.Join(baseURL, name)
		if err := s.Save(ctx, URL, samples[name]); err != nil {
			return nil, fmt.Errorf("failed to generate %v: %w", name, err)
		}
		ret = append(ret, URL)
	}
	URL := url.Join(baseURL, BankerSample)
	if err := s.SaveResources(ctx, URL, BankerSampleState()); err != nil {
		return nil, fmt.Errorf("failed to generate %v: %w", BankerSample, err)
	}
	ret = append(ret, URL)
	logging.FromContext(ctx).Info("samples generated", "location", baseURL, "files", len(ret))
	return ret, nil
}
