package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CheckDirectoryAccess reports whether path is an existing directory the
// current user can list and write into.
func CheckDirectoryAccess(name, path string) Result {
	if problem := directoryProblem(path); problem != "" {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s)", path, problem)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func directoryProblem(path string) string {
	if path == "" {
		return "not configured"
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "does not exist"
	case err != nil:
		return fmt.Sprintf("stat: %v", err)
	case !info.IsDir():
		return "is not a directory"
	}
	if err := checkAccess(path); err != nil {
		return fmt.Sprintf("insufficient permissions: %v", err)
	}
	return ""
}
