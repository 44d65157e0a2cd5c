package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	quillerr "github.com/mrz1836/quill/pkg/errors"
)

func TestMetrics_Record(t *testing.T) {
	t.Parallel()
	m := New()

	m.Record(OpSign, 2*time.Millisecond, nil)
	m.Record(OpSign, 4*time.Millisecond, quillerr.ErrInvalidKeyFormat)
	m.Record(OpRecover, time.Millisecond, nil)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Sign.Total)
	assert.Equal(t, int64(1), snap.Sign.Errors)
	assert.Equal(t, int64(1), snap.Recover.Total)
	assert.Equal(t, int64(0), snap.SignHash.Total)
	assert.InDelta(t, 3.0, snap.Sign.AvgLatencyMs(), 0.001)

	assert.Equal(t, int64(3), m.Total())
	assert.Equal(t, int64(1), m.Errors())
}

func TestMetrics_UnknownOpIgnored(t *testing.T) {
	t.Parallel()
	m := &Metrics{}

	m.Record(Op("broadcast"), time.Second, nil)
	assert.Equal(t, int64(0), m.Total())
}

func TestMetrics_AvgLatencyNoCalls(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 0.0, OpSnapshot{}.AvgLatencyMs(), 0.001)
}

func TestMetrics_Reset(t *testing.T) {
	t.Parallel()
	m := New()

	m.Record(OpSignHash, time.Millisecond, quillerr.ErrGeneral)
	m.Reset()

	assert.Equal(t, Snapshot{}, m.Snapshot())
}

func TestMetrics_Concurrent(t *testing.T) {
	t.Parallel()
	m := New()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Record(OpSign, time.Microsecond, nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), m.Snapshot().Sign.Total)
}
