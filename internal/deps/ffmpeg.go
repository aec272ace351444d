package deps

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// CheckFFmpeg reports the ffmpeg binary a conversion would execute. A bare
// name is resolved from PATH; anything containing a path separator must name
// an executable file.
func CheckFFmpeg(command string) Status {
	command = strings.TrimSpace(command)
	if command == "" {
		command = "ffmpeg"
	}
	if !strings.ContainsAny(command, `/\`) {
		return checkBinary(Requirement{
			Name:        "FFmpeg",
			Command:     command,
			Description: "Used for media conversion",
			Optional:    true,
		})
	}

	result := Status{
		Name:        "FFmpeg",
		Command:     command,
		Description: "Used for media conversion",
		Optional:    true,
	}
	info, err := os.Stat(command)
	if err != nil {
		result.Detail = fmt.Sprintf("binary %q not found", command)
		return result
	}
	if !isExecutable(info) {
		result.Detail = fmt.Sprintf("%q is not executable", command)
		return result
	}
	result.Available = true
	return result
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
