// Package metrics keeps runtime gauges in an embedded time-series
// store under the working directory.
package metrics

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/nakabonne/tstorage"
)

var (
	mu      sync.Mutex
	storage tstorage.Storage
)

// InitMetrics opens the metrics store under workdir/data/metrics.
func InitMetrics(workdir string) error {
	mu.Lock()
	defer mu.Unlock()
	s, err := tstorage.NewStorage(
		tstorage.WithDataPath(filepath.Join(workdir, "data", "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithRetention(30*24*time.Hour),
	)
	if err != nil {
		return err
	}
	storage = s
	return nil
}

// SetGauge records the current value of a named gauge.
func SetGauge(name string, value int64) {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return
	}
	_ = storage.InsertRows([]tstorage.Row{
		{
			Metric:    name,
			DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: float64(value)},
		},
	})
}

// Latest returns the most recent value of a gauge within the last day,
// or false when nothing has been recorded.
func Latest(name string) (float64, bool) {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return 0, false
	}
	end := time.Now().Unix() + 1
	points, err := storage.Select(name, nil, end-24*3600, end)
	if err != nil || len(points) == 0 {
		return 0, false
	}
	return points[len(points)-1].Value, true
}

// Close flushes and closes the metrics store.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return nil
	}
	err := storage.Close()
	storage = nil
	return err
}
