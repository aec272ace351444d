//go:build windows

package shell

const openCommand = "explorer"
