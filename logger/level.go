package logger

// Level identifies the severity of a log entry. Every level is always
// printed; the level only selects the symbol and style.
type Level uint8

const (
	// DebugLevel marks diagnostic output (magenta, '?').
	DebugLevel Level = iota
	// InfoLevel marks informational output (blue, '*').
	InfoLevel
	// WarnLevel marks warnings (yellow, '~').
	WarnLevel
	// ErrorLevel marks errors (red, '!', bold body).
	ErrorLevel
	// SuccessLevel marks successful operations (green, '+', bold body).
	SuccessLevel
	// CriticalLevel marks critical failures (white on red, '%', bold body).
	CriticalLevel
)

// AllLevels returns all supported levels.
func AllLevels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		SuccessLevel,
		CriticalLevel,
	}
}

// ANSI SGR parameters.
const (
	sgrBold      = "1"
	sgrFgRed     = "31"
	sgrFgGreen   = "32"
	sgrFgYellow  = "33"
	sgrFgBlue    = "34"
	sgrFgMagenta = "35"
	sgrFgWhite   = "37"
	sgrBgRed     = "41"
)

type levelInfo struct {
	name     string
	symbol   byte
	colors   []string
	boldBody bool
}

var levels = map[Level]levelInfo{
	DebugLevel:    {name: "DEBUG", symbol: '?', colors: []string{sgrFgMagenta}},
	InfoLevel:     {name: "INFO", symbol: '*', colors: []string{sgrFgBlue}},
	WarnLevel:     {name: "WARN", symbol: '~', colors: []string{sgrFgYellow}},
	ErrorLevel:    {name: "ERROR", symbol: '!', colors: []string{sgrFgRed}, boldBody: true},
	SuccessLevel:  {name: "SUCCESS", symbol: '+', colors: []string{sgrFgGreen}, boldBody: true},
	CriticalLevel: {name: "CRITICAL", symbol: '%', colors: []string{sgrFgWhite, sgrBgRed}, boldBody: true},
}

func (lvl Level) info() levelInfo {
	if li, ok := levels[lvl]; ok {
		return li
	}
	return levels[InfoLevel]
}

// String returns the upper-case level name.
func (lvl Level) String() string {
	if li, ok := levels[lvl]; ok {
		return li.name
	}
	return "UNKNOWN"
}

// Symbol returns the single-character glyph printed in the header.
func (lvl Level) Symbol() string {
	return string(lvl.info().symbol)
}
