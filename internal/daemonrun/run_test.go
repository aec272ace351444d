package daemonrun

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"mediaconv/internal/ipc"
	"mediaconv/internal/media"
	"mediaconv/internal/testsupport"
	"mediaconv/internal/window"
)

func TestBuildSelectsHost(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLaunchBrowser(true))
	rt, err := Build(cfg, nil, Options{Headless: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := rt.Daemon.Service().OpenSettingsWindow(context.Background()); err != nil {
		t.Fatalf("OpenSettingsWindow: %v", err)
	}
	if _, ok := rt.Registry.Get(window.SettingsLabel); !ok {
		t.Fatal("expected settings window to be registered")
	}
}

func TestAPIBaseURLUsesBoundPort(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	rt, err := Build(cfg, nil, Options{Headless: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer rt.Daemon.Close()

	if got := apiBaseURL(nil, cfg.Paths.APIBind); got != "http://127.0.0.1:0" {
		t.Fatalf("apiBaseURL without daemon = %q", got)
	}
	if err := rt.Daemon.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	got := apiBaseURL(rt.Daemon, cfg.Paths.APIBind)
	if got != "http://"+rt.Daemon.APIAddress() || strings.HasSuffix(got, ":0") {
		t.Fatalf("apiBaseURL after start = %q", got)
	}
}

func TestBuildUsesNativePicker(t *testing.T) {
	t.Run("selection", func(t *testing.T) {
		cfg := testsupport.NewConfig(t, testsupport.WithStubOutput("zenity", 0, "/in/a.mp4", "/in/b.PNG"))
		rt, err := Build(cfg, nil, Options{Headless: true})
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		items, err := rt.Daemon.Service().PickFiles(context.Background())
		if err != nil {
			t.Fatalf("PickFiles: %v", err)
		}
		if len(items) != 2 || items[0].Path != "/in/a.mp4" || items[1].Kind != media.KindPhoto {
			t.Fatalf("unexpected items: %+v", items)
		}
	})
	t.Run("cancel", func(t *testing.T) {
		cfg := testsupport.NewConfig(t, testsupport.WithStubOutput("zenity", 1))
		rt, err := Build(cfg, nil, Options{Headless: true})
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		path, err := rt.Daemon.Service().PickOutput(context.Background())
		if err != nil || path != "" {
			t.Fatalf("PickOutput = %q, %v", path, err)
		}
	})
}

func TestBuildRejectsUnknownBackend(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Dialog.Backend = "gtk"
	if _, err := Build(cfg, nil, Options{}); err == nil {
		t.Fatal("expected error for unknown dialog backend")
	}
}

func TestRunServesUntilShutdown(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Logging.Level = "error"

	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), cfg, Options{Headless: true})
	}()

	var client *ipc.Client
	deadline := time.Now().Add(5 * time.Second)
	for client == nil {
		c, err := ipc.Dial(cfg.SocketPath())
		if err == nil {
			client = c
			break
		}
		select {
		case runErr := <-done:
			t.Fatalf("Run exited early: %v", runErr)
		default:
		}
		if time.Now().After(deadline) {
			t.Fatalf("daemon socket never appeared: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	defer client.Close()

	if _, err := os.Stat(PIDPath(cfg)); err != nil {
		t.Fatalf("expected pid file: %v", err)
	}
	status, err := client.Status()
	if err != nil || !status.Running {
		t.Fatalf("Status = %+v, %v", status, err)
	}
	if _, err := client.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after shutdown")
	}
	if _, err := os.Stat(PIDPath(cfg)); !os.IsNotExist(err) {
		t.Fatalf("expected pid file removal, stat err=%v", err)
	}
}
