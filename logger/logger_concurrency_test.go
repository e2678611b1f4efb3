package logger

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_UniqueIndices verifies that the mutex prevents garbled output
// and duplicate indices when multiple goroutines log simultaneously.
func TestConcurrency_UniqueIndices(t *testing.T) {
	buf := captureStderr(t)
	var file bytes.Buffer

	l := New()
	mustConfigure(t, l, Plain(), FileAt(&file))

	const numGoroutines = 50
	const messagesPerGoroutine = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				l.Infof("goroutine-%d-info-%d", id, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	expectedLines := numGoroutines * messagesPerGoroutine
	if len(lines) != expectedLines {
		t.Fatalf("expected %d log lines, got %d", expectedLines, len(lines))
	}

	// Verify that each line is complete and carries the next index
	linePattern := regexp.MustCompile(`^\[([0-9a-f]{4}):\*\] goroutine-\d+-info-\d+$`)
	for i, line := range lines {
		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("line %d is garbled: %q", i, line)
		}
		idx, err := strconv.ParseUint(m[1], 16, 16)
		if err != nil {
			t.Fatalf("line %d: bad index %q", i, m[1])
		}
		if int(idx) != i {
			t.Fatalf("line %d carries index %d", i, idx)
		}
	}

	if file.String() != buf.String() {
		t.Fatal("file copy should match plain console output line for line")
	}
}

func TestAsync_PreservesOrder(t *testing.T) {
	buf := captureStderr(t)
	l := New()
	mustConfigure(t, l, Plain())

	a := l.Async(8)
	const n = 100
	pending := make([]<-chan error, 0, n)
	for i := 0; i < n; i++ {
		pending = append(pending, a.Info(fmt.Sprintf("async-%d", i)))
	}
	for i, done := range pending {
		if err := <-done; err != nil {
			t.Fatalf("entry %d: %v", i, err)
		}
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("expected %d lines, got %d", n, len(lines))
	}
	for i, line := range lines {
		if want := fmt.Sprintf("[%04x:*] async-%d", i, i); line != want {
			t.Fatalf("line %d = %q, want %q", i, line, want)
		}
	}
}

func TestAsync_LevelMethods(t *testing.T) {
	buf := captureStderr(t)
	l := New()
	mustConfigure(t, l, Plain(), NoIndex())

	a := l.Async(0)
	for _, done := range []<-chan error{
		a.Debug("d"),
		a.Info("i"),
		a.Warn("w"),
		a.Error("e"),
		a.Success("s"),
		a.Critical("c"),
	} {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
	a.Close()

	if got, want := buf.String(), "[?] d\n[*] i\n[~] w\n[!] e\n[+] s\n[%] c\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAsync_CloseDrainsQueue(t *testing.T) {
	buf := captureStderr(t)
	l := New()
	mustConfigure(t, l, Basic())

	a := l.Async(64)
	for i := 0; i < 50; i++ {
		a.Info(strconv.Itoa(i))
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 50 {
		t.Fatalf("expected all 50 queued entries to be written, got %d", got)
	}
}

func TestAsync_AfterClose(t *testing.T) {
	captureStderr(t)
	l := New()
	a := l.Async(1)

	if err := a.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second Close() should be a no-op, got %v", err)
	}
	if err := <-a.Info("late"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if got := l.Index(); got != 0 {
		t.Fatalf("rejected entries must not advance the index, got %d", got)
	}
}

func TestAsync_ReturnsWriteErrors(t *testing.T) {
	captureStderr(t)
	boom := errors.New("boom")
	l := New()
	mustConfigure(t, l, FileAt(failingWriter{err: boom}))

	a := l.Async(1)
	defer a.Close()
	if err := <-a.Warn("x"); !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
}
