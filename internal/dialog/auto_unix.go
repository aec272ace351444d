//go:build !darwin && !windows

package dialog

func autoBackend() backend { return unixBackend() }
