package config

const (
	defaultConfigPath       = "~/.config/karamove/config.toml"
	projectConfigName       = "karamove.toml"
	defaultFFmpegBinary     = "ffmpeg"
	defaultFFprobeBinary    = "ffprobe"
	defaultSegmentExtension = "ogg"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogMaxSizeMB     = 10
	defaultLogMaxBackups    = 3
	defaultLogMaxAgeDays    = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Segments: Segments{
			Extension: defaultSegmentExtension,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
