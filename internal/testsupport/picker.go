package testsupport

import (
	"context"
	"sync"

	"mediaconv/internal/dialog"
)

// Picker is a scripted dialog.Picker. Zero values behave like a cancelled
// dialog.
type Picker struct {
	mu     sync.Mutex
	Files  []string
	Folder string
	File   string
	Err    error
	Calls  []PickerCall
}

// PickerCall records one dialog invocation.
type PickerCall struct {
	Method  string
	Options dialog.Options
}

func (p *Picker) record(method string, opts dialog.Options) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, PickerCall{Method: method, Options: opts})
}

func (p *Picker) PickFiles(_ context.Context, opts dialog.Options) ([]string, error) {
	p.record("PickFiles", opts)
	return p.Files, p.Err
}

func (p *Picker) PickFolder(_ context.Context, opts dialog.Options) (string, error) {
	p.record("PickFolder", opts)
	return p.Folder, p.Err
}

func (p *Picker) PickFile(_ context.Context, opts dialog.Options) (string, error) {
	p.record("PickFile", opts)
	return p.File, p.Err
}

// LastCall returns the most recent invocation.
func (p *Picker) LastCall() (PickerCall, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Calls) == 0 {
		return PickerCall{}, false
	}
	return p.Calls[len(p.Calls)-1], true
}
