//go:build windows

package preflight

import "os"

// checkAccess probes writability by creating and removing a temp file.
func checkAccess(path string) error {
	f, err := os.CreateTemp(path, ".mediaconv-access-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
