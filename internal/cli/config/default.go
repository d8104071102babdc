package config

// Default configuration values.
const (
	DefaultTerminator   = "."
	DefaultOutputFormat = "table"
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "text"
	DefaultPrompt       = "enigma> "
	DefaultHistorySize  = 500
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Input: InputSection{
			Terminator: DefaultTerminator,
		},
		Output: OutputSection{
			Format: DefaultOutputFormat,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Shell: ShellSection{
			Prompt: DefaultPrompt,
		},
	}
}
