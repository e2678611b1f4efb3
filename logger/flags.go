package logger

import "strings"

// Flags is the option mask controlling how entries are rendered and routed.
// The zero value enables every decoration and writes to the console only.
type Flags uint8

const (
	// FlagNoIndex hides the running log index.
	FlagNoIndex Flags = 1 << iota
	// FlagNoSymbol hides the severity symbol.
	FlagNoSymbol
	// FlagNoColor removes color escape sequences.
	FlagNoColor
	// FlagNoBold removes bold escape sequences.
	FlagNoBold
	// FlagFile mirrors a plain copy of each entry to the log file.
	FlagFile
	// FlagFileOnly suppresses console output.
	FlagFileOnly
	// FlagTimer appends the elapsed time since the timer origin to the header.
	FlagTimer
)

const (
	// FlagsPlain removes all escape sequences.
	FlagsPlain = FlagNoColor | FlagNoBold
	// FlagsBasic removes the header and all escape sequences.
	FlagsBasic = FlagsPlain | FlagNoIndex | FlagNoSymbol

	flagsNoHeader = FlagNoIndex | FlagNoSymbol
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagNoIndex, "NoIndex"},
	{FlagNoSymbol, "NoSymbol"},
	{FlagNoColor, "NoColor"},
	{FlagNoBold, "NoBold"},
	{FlagFile, "File"},
	{FlagFileOnly, "FileOnly"},
	{FlagTimer, "Timer"},
}

// Has reports whether every bit of mask is set in f.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// String lists the set flags joined by '|', or "Default" for the zero mask.
func (f Flags) String() string {
	if f == 0 {
		return "Default"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
