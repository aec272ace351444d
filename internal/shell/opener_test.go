package shell

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"

	"mediaconv/internal/logging"
)

type fakeProcess struct {
	waited chan struct{}
}

func (p *fakeProcess) Wait() error {
	close(p.waited)
	return errors.New("exit status 4")
}

type recordingSpawner struct {
	mu    sync.Mutex
	calls [][]string
	proc  *fakeProcess
	err   error
}

func (r *recordingSpawner) spawn(name string, args ...string) (Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.err != nil {
		return nil, r.err
	}
	return r.proc, nil
}

func TestOpenEmptyPathSpawnsNothing(t *testing.T) {
	spawner := &recordingSpawner{}
	opener := New(nil, spawner.spawn)
	if err := opener.Open(context.Background(), ""); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(spawner.calls) != 0 {
		t.Fatalf("expected no process, got %v", spawner.calls)
	}
}

func TestOpenStartsPlatformHandlerAndReaps(t *testing.T) {
	spawner := &recordingSpawner{proc: &fakeProcess{waited: make(chan struct{})}}
	opener := New(nil, spawner.spawn)
	if err := opener.Open(context.Background(), "/out/dir"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	<-spawner.proc.waited

	want := map[string]string{"darwin": "open", "windows": "explorer"}[runtime.GOOS]
	if want == "" {
		want = "xdg-open"
	}
	if opener.Command() != want {
		t.Fatalf("Command() = %q, want %q", opener.Command(), want)
	}
	if len(spawner.calls) != 1 || spawner.calls[0][0] != want || spawner.calls[0][1] != "/out/dir" {
		t.Fatalf("unexpected spawn calls %v", spawner.calls)
	}
}

func TestOpenLaunchFailureIsLoggedNotReturned(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	spawner := &recordingSpawner{err: errors.New("executable file not found")}
	if err := New(logger, spawner.spawn).Open(context.Background(), "/missing"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "shell_open_failed") || !strings.Contains(out, "/missing") {
		t.Fatalf("expected warning in log, got %s", out)
	}
}
