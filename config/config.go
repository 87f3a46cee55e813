package config

const (
	Debug        = true
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultScale    = 8
	MaxScale        = 18
	DefaultRounding = "HALF_EVEN"

	DatasetMaximumSize = 1024 * 1024 * 16
	DatasetVersion     = 1

	DefaultRPCPort   = 7239
	DefaultCacheSize = 1024 * 32
)
