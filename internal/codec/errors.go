package codec

import "als/internal/errkind"

// ConfigError reports an invalid Config field, named so a caller can
// report it without string-matching the message.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "invalid config field " + e.Field + ": " + e.Message
}

func (e *ConfigError) Kind() errkind.Kind { return errkind.KindSemantic }

// InputTooLargeError is returned when a table's estimated raw size exceeds
// Config.MaxInputSize (spec §5's resource caps).
type InputTooLargeError struct {
	Size, Max int64
}

func (e *InputTooLargeError) Error() string {
	return "input size exceeds max_input_size"
}

func (e *InputTooLargeError) Kind() errkind.Kind { return errkind.KindResource }
