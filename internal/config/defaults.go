package config

const (
	defaultPresetsFile      = "~/.config/vcshell/presets.yaml"
	defaultCompressorBinary = "video-compress"
	defaultLogDir           = "~/.local/share/vcshell/logs"
	defaultAPIBind          = "127.0.0.1:7610"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Presets: Presets{
			File: defaultPresetsFile,
		},
		Compressor: Compressor{
			Binary: defaultCompressorBinary,
		},
		Paths: Paths{
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
