package constants

// LogFormat selects how log records are rendered.
type LogFormat string

const (
	// LogFormatText is human-readable, colored when writing to a terminal.
	LogFormatText LogFormat = "text"

	// LogFormatLogfmt writes key=value pairs.
	LogFormatLogfmt LogFormat = "logfmt"

	// LogFormatJSON writes one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// Valid returns true if the format is a recognized value.
func (f LogFormat) Valid() bool {
	switch f {
	case LogFormatText, LogFormatLogfmt, LogFormatJSON:
		return true
	}
	return false
}

// String returns the string representation of the format.
func (f LogFormat) String() string {
	return string(f)
}
