package config

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.quill",
		Signing: SigningConfig{
			StrictFields: false,
			Output:       SigningOutputHex,
		},
		Security: SecurityConfig{
			MemoryLock: true,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.quill/quill.log",
		},
	}
}
