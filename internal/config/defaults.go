package config

const (
	defaultStateDir       = "~/.local/share/mediaconv"
	defaultLogDir         = "~/.local/share/mediaconv/logs"
	defaultOutputDir      = "~/Videos/converted"
	defaultAPIBind        = "127.0.0.1:7488"
	defaultDialogBackend  = DialogAuto
	defaultSettingsTitle  = "Налаштування"
	defaultSettingsWidth  = 860
	defaultSettingsHeight = 760
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigPath     = "~/.config/mediaconv/config.toml"
	defaultProjectConfig  = "mediaconv.toml"
	socketFileName        = "mediaconv.sock"
	lockFileName          = "mediaconvd.lock"
	logFileName           = "mediaconv.log"
)

// Dialog backends understood by the dialog package.
const (
	DialogAuto       = "auto"
	DialogZenity     = "zenity"
	DialogKDialog    = "kdialog"
	DialogOsascript  = "osascript"
	DialogPowerShell = "powershell"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir:         defaultStateDir,
			LogDir:           defaultLogDir,
			DefaultOutputDir: defaultOutputDir,
			APIBind:          defaultAPIBind,
		},
		Dialog: Dialog{
			Backend: defaultDialogBackend,
		},
		Window: Window{
			SettingsTitle:  defaultSettingsTitle,
			SettingsWidth:  defaultSettingsWidth,
			SettingsHeight: defaultSettingsHeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
