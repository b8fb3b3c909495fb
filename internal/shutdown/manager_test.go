package shutdown

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type orderRecorder struct {
	mu    sync.Mutex
	order []string
}

func (o *orderRecorder) add(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.order = append(o.order, name)
}

type recordingStep struct {
	name     string
	recorder *orderRecorder
}

func (r recordingStep) Shutdown() { r.recorder.add(r.name) }

type blockingStep struct {
	release chan struct{}
}

func (b blockingStep) Shutdown() { <-b.release }

func TestShutdownRunsStepsInReverseOrderOnce(t *testing.T) {
	recorder := &orderRecorder{}
	m := NewManager(nil)
	m.Register("service", recordingStep{"service", recorder})
	m.Register("controller", recordingStep{"controller", recorder})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"controller", "service"}, recorder.order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
	assert.Error(t, m.Context().Err())
}

func TestShutdownSkipsStuckStep(t *testing.T) {
	recorder := &orderRecorder{}
	stuck := blockingStep{release: make(chan struct{})}
	defer close(stuck.release)

	m := NewManager(nil)
	m.SetStepTimeout(20 * time.Millisecond)
	m.Register("first", recordingStep{"first", recorder})
	m.Register("stuck", stuck)

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, []string{"first"}, recorder.order)
}

func TestListenStopsAfterShutdown(t *testing.T) {
	m := NewManager(nil)
	m.Listen(func(os.Signal) {})
	m.Shutdown()
}
