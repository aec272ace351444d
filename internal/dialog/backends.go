package dialog

import (
	"os/exec"
	"strings"
)

type zenity struct{}

func (zenity) name() string { return "zenity" }

func (zenity) command(sel selection, opts Options) (string, []string) {
	args := []string{"--file-selection"}
	switch sel {
	case selectFiles:
		args = append(args, "--multiple", "--separator=\n")
	case selectFolder:
		args = append(args, "--directory")
	}
	if opts.Title != "" {
		args = append(args, "--title="+opts.Title)
	}
	if opts.Directory != "" {
		// A trailing separator makes zenity open the directory instead of
		// preselecting it.
		args = append(args, "--filename="+strings.TrimRight(opts.Directory, "/")+"/")
	}
	return "zenity", args
}

type kdialog struct{}

func (kdialog) name() string { return "kdialog" }

func (kdialog) command(sel selection, opts Options) (string, []string) {
	start := opts.Directory
	if start == "" {
		start = "."
	}
	var args []string
	switch sel {
	case selectFiles:
		args = []string{"--getopenfilename", start, "--multiple", "--separate-output"}
	case selectFolder:
		args = []string{"--getexistingdirectory", start}
	default:
		args = []string{"--getopenfilename", start}
	}
	if opts.Title != "" {
		args = append(args, "--title", opts.Title)
	}
	return "kdialog", args
}

type osascript struct{}

func (osascript) name() string { return "osascript" }

func (osascript) command(sel selection, opts Options) (string, []string) {
	var clause strings.Builder
	if opts.Title != "" {
		clause.WriteString(" with prompt ")
		clause.WriteString(appleString(opts.Title))
	}
	if opts.Directory != "" {
		clause.WriteString(" default location POSIX file ")
		clause.WriteString(appleString(opts.Directory))
	}

	var script string
	switch sel {
	case selectFiles:
		script = "set picked to choose file" + clause.String() + " with multiple selections allowed\n" +
			"set out to \"\"\n" +
			"repeat with f in picked\n" +
			"set out to out & POSIX path of f & linefeed\n" +
			"end repeat\n" +
			"return out"
	case selectFolder:
		script = "POSIX path of (choose folder" + clause.String() + ")"
	default:
		script = "POSIX path of (choose file" + clause.String() + ")"
	}
	return "osascript", []string{"-e", script}
}

// appleString quotes value as an AppleScript string literal.
func appleString(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
	return `"` + escaped + `"`
}

type powershell struct{}

func (powershell) name() string { return "powershell" }

func (powershell) command(sel selection, opts Options) (string, []string) {
	var script strings.Builder
	// Redirected stdout otherwise uses the OEM code page and mangles non-ASCII paths.
	script.WriteString("[Console]::OutputEncoding = [System.Text.Encoding]::UTF8\n")
	script.WriteString("Add-Type -AssemblyName System.Windows.Forms\n")
	switch sel {
	case selectFolder:
		script.WriteString("$dlg = New-Object System.Windows.Forms.FolderBrowserDialog\n")
		script.WriteString("$dlg.ShowNewFolderButton = $true\n")
		if opts.Title != "" {
			script.WriteString("$dlg.Description = " + psString(opts.Title) + "\n")
		}
		if opts.Directory != "" {
			script.WriteString("$dlg.SelectedPath = " + psString(opts.Directory) + "\n")
		}
		script.WriteString("if ($dlg.ShowDialog() -eq [System.Windows.Forms.DialogResult]::OK) {\n")
		script.WriteString("  Write-Output $dlg.SelectedPath\n")
		script.WriteString("}\n")
	default:
		script.WriteString("$dlg = New-Object System.Windows.Forms.OpenFileDialog\n")
		if sel == selectFiles {
			script.WriteString("$dlg.Multiselect = $true\n")
		}
		if opts.Title != "" {
			script.WriteString("$dlg.Title = " + psString(opts.Title) + "\n")
		}
		if opts.Directory != "" {
			script.WriteString("$dlg.InitialDirectory = " + psString(opts.Directory) + "\n")
		}
		script.WriteString("if ($dlg.ShowDialog() -eq [System.Windows.Forms.DialogResult]::OK) {\n")
		script.WriteString("  $dlg.FileNames | ForEach-Object { Write-Output $_ }\n")
		script.WriteString("}\n")
	}
	return "powershell", []string{"-NoProfile", "-STA", "-Command", script.String()}
}

// psString quotes value as a single-quoted PowerShell literal.
func psString(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// unixBackend prefers zenity, then kdialog, falling back to zenity so the
// failure names a concrete binary to install.
func unixBackend() backend {
	if _, err := exec.LookPath("zenity"); err == nil {
		return zenity{}
	}
	if _, err := exec.LookPath("kdialog"); err == nil {
		return kdialog{}
	}
	return zenity{}
}
