package config

import "unicode/utf8"

// Maximum byte lengths of Target string fields, matching the native
// addressing buffers hostd clients have always used.
const (
	MaxSocketPathLen = 255
	MaxHostLen       = 127
	MaxConfigPathLen = 511
)

// bounded cuts value to at most limit bytes without splitting a UTF-8
// sequence. The flag reports whether anything was cut; logging is left to
// the caller.
func bounded(value string, limit int) (string, bool) {
	if len(value) <= limit {
		return value, false
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut], true
}
