package metrics_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/majority/majority"
	"github.com/katalvlaran/majority/metrics"
)

func sample(inputType string, size int) majority.Metrics {
	return majority.Metrics{
		Algorithm:         majority.DefaultAlgorithm,
		InputSize:         size,
		InputType:         inputType,
		ArrayAccesses:     int64(2 * size),
		Comparisons:       int64(2*size - 1),
		MemoryAllocations: 1,
		Elapsed:           1500 * time.Nanosecond,
	}
}

// recorder is an Observer that remembers what it saw.
type recorder struct {
	mu   sync.Mutex
	seen []majority.Metrics
}

func (r *recorder) Observe(m majority.Metrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, m)
}

func TestCollector_AddRecordsReset(t *testing.T) {
	rec := &recorder{}
	c := metrics.NewCollector(rec, nil, metrics.NopObserver{})

	c.Add(sample("random", 10))
	c.Add(sample("sorted", 20))

	require.Equal(t, 2, c.Len())
	got := c.Records()
	assert.Equal(t, "random", got[0].InputType)
	assert.Equal(t, "sorted", got[1].InputType)
	assert.Len(t, rec.seen, 2, "observers see every record")

	// Records returns a copy.
	got[0].InputType = "mutated"
	assert.Equal(t, "random", c.Records()[0].InputType)

	c.Reset()
	assert.Zero(t, c.Len())
	c.Add(sample("random", 1))
	assert.Len(t, rec.seen, 3, "observers survive Reset")
}

func TestCollector_ZeroValue(t *testing.T) {
	var c metrics.Collector
	c.Add(sample("random", 1))
	assert.Equal(t, 1, c.Len())
}

func TestCollector_Concurrent(t *testing.T) {
	c := metrics.NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(sample("random", 5))
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := metrics.WriteCSV(&buf, []majority.Metrics{sample("random", 100), sample("majority-heavy", 10)})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Algorithm,InputSize,InputType,ArrayAccesses,Comparisons,MemoryAllocations,ExecutionTimeNs", lines[0])
	assert.Equal(t, "Boyer-Moore Majority Vote,100,random,200,199,1,1500", lines[1])
	assert.Equal(t, "Boyer-Moore Majority Vote,10,majority-heavy,20,19,1,1500", lines[2])
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, metrics.WriteCSV(&buf, nil))
	assert.Equal(t, strings.Join(metrics.Header, ",")+"\n", buf.String())
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_WriterFailure(t *testing.T) {
	err := metrics.WriteCSV(failWriter{}, []majority.Metrics{sample("random", 1)})
	assert.ErrorIs(t, err, metrics.ErrExport)
	assert.Contains(t, err.Error(), "disk full")
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, metrics.ExportCSV(path, []majority.Metrics{sample("sorted", 3)}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Boyer-Moore Majority Vote,3,sorted,6,5,1,1500")
}

func TestExportCSV_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.csv")
	err := metrics.ExportCSV(path, nil)
	assert.ErrorIs(t, err, metrics.ErrExport)
}

func TestSummary(t *testing.T) {
	s := metrics.Summary(sample("demo", 7))
	assert.Contains(t, s, "Algorithm: Boyer-Moore Majority Vote")
	assert.Contains(t, s, "Input Size: 7 (demo)")
	assert.Contains(t, s, "Array Accesses: 14")
	assert.Contains(t, s, "Space Complexity: O(1)")
}

func TestPrometheus_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, err := metrics.NewPrometheus(reg, "")
	require.NoError(t, err)

	c := metrics.NewCollector(p)
	c.Add(sample("random", 10))
	c.Add(sample("random", 5))
	c.Add(sample("sorted", 1))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 10, n, "five families × two input types")

	expected := `
# HELP majority_vote_runs_total Total instrumented majority-vote calls.
# TYPE majority_vote_runs_total counter
majority_vote_runs_total{input_type="random"} 2
majority_vote_runs_total{input_type="sorted"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "majority_vote_runs_total"))

	expected = `
# HELP majority_vote_array_accesses_total Element reads across candidate selection and verification.
# TYPE majority_vote_array_accesses_total counter
majority_vote_array_accesses_total{input_type="random"} 30
majority_vote_array_accesses_total{input_type="sorted"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "majority_vote_array_accesses_total"))
}

func TestPrometheus_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewPrometheus(reg, "dup")
	require.NoError(t, err)

	_, err = metrics.NewPrometheus(reg, "dup")
	assert.Error(t, err)
}
