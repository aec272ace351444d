//go:build !darwin && !windows

package shell

const openCommand = "xdg-open"
