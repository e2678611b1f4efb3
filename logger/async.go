package logger

import "sync"

type request struct {
	level Level
	msg   string
	done  chan error
}

// AsyncLogger hands entries to a single worker goroutine that writes them
// through the wrapped Logger in submission order. Each call returns a
// channel that receives the result of the write.
type AsyncLogger struct {
	logger *Logger
	queue  chan request

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// Async starts a worker for l with room for buffer pending entries. Callers
// block once the buffer is full.
func (l *Logger) Async(buffer int) *AsyncLogger {
	if buffer < 0 {
		buffer = 0
	}
	a := &AsyncLogger{
		logger: l,
		queue:  make(chan request, buffer),
	}
	a.wg.Add(1)
	go a.run()
	return a
}

func (a *AsyncLogger) run() {
	defer a.wg.Done()
	for req := range a.queue {
		req.done <- a.logger.Log(req.level, req.msg)
	}
}

// Log queues msg at the given level.
func (a *AsyncLogger) Log(level Level, msg string) <-chan error {
	done := make(chan error, 1)

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		done <- ErrClosed
		return done
	}
	a.queue <- request{level: level, msg: msg, done: done}
	return done
}

// Close stops accepting entries and waits until every queued entry has been
// written. The wrapped Logger stays open.
func (a *AsyncLogger) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.queue)
	a.mu.Unlock()

	a.wg.Wait()
	return nil
}

// Debug queues a debug message.
func (a *AsyncLogger) Debug(msg string) <-chan error { return a.Log(DebugLevel, msg) }

// Info queues an informational message.
func (a *AsyncLogger) Info(msg string) <-chan error { return a.Log(InfoLevel, msg) }

// Warn queues a warning.
func (a *AsyncLogger) Warn(msg string) <-chan error { return a.Log(WarnLevel, msg) }

// Error queues an error message.
func (a *AsyncLogger) Error(msg string) <-chan error { return a.Log(ErrorLevel, msg) }

// Success queues a success message.
func (a *AsyncLogger) Success(msg string) <-chan error { return a.Log(SuccessLevel, msg) }

// Critical queues a critical message.
func (a *AsyncLogger) Critical(msg string) <-chan error { return a.Log(CriticalLevel, msg) }
