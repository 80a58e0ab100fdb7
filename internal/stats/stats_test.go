package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompressionStatsAccumulate(t *testing.T) {
	s := New()
	s.AddInputBytes(100)
	s.AddOutputBytes(40)
	s.RecordOperator(KindRange)
	s.RecordOperator(KindRange)
	s.RecordOperator(KindDictRef)

	snap := s.Snapshot()
	assert.Equal(t, int64(100), snap.InputBytes)
	assert.Equal(t, int64(40), snap.OutputBytes)
	assert.Equal(t, int64(2), snap.RangeCount)
	assert.Equal(t, int64(1), snap.DictRefCount)
}

func TestCompressionStatsConcurrentUse(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddInputBytes(1)
			s.RecordOperator(KindRaw)
		}()
	}
	wg.Wait()
	snap := s.Snapshot()
	assert.Equal(t, int64(100), snap.InputBytes)
	assert.Equal(t, int64(100), snap.RawCount)
}
