//go:build darwin

package shell

const openCommand = "open"
