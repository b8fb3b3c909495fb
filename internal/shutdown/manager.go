package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"growth-rate-calculator/internal/logger"
)

const DefaultStepTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

type step struct {
	name      string
	component Shutdownable
}

// Manager runs registered shutdown steps once, in reverse registration
// order, either on demand or when the process is signalled.
type Manager struct {
	steps       []step
	logger      logger.Logger
	stepTimeout time.Duration
	mu          sync.Mutex
	done        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:      log,
		stepTimeout: DefaultStepTimeout,
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// SetStepTimeout bounds how long a single step may block
func (m *Manager) SetStepTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stepTimeout = timeout
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, step{name: name, component: component})
}

// Listen calls onSignal and then Shutdown when SIGINT or SIGTERM arrives.
// Listening stops once the manager has shut down.
func (m *Manager) Listen(onSignal func(os.Signal)) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("Shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal(sig)
			}
			m.Shutdown()
		case <-m.ctx.Done():
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("Shutdown sequence initiated", map[string]interface{}{
		"steps": len(m.steps),
	})

	m.cancel()

	for i := len(m.steps) - 1; i >= 0; i-- {
		s := m.steps[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			s.component.Shutdown()
		}()

		select {
		case <-done:
			m.logger.Debug("Shutdown step completed", map[string]interface{}{
				"step": s.name,
			})
		case <-time.After(m.stepTimeout):
			m.logger.Warning("Shutdown step timeout", map[string]interface{}{
				"step": s.name,
			})
		}
	}

	m.logger.Info("Shutdown sequence completed", nil)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
