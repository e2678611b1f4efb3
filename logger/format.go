package logger

import (
	"fmt"
	"strings"
	"time"
)

const ansiReset = "\033[0m"

// style is a set of SGR parameters applied to one fragment of a line.
type style []string

// apply wraps s in the escape sequence for st. Empty fragments and empty
// styles are returned untouched.
func (st style) apply(s string) string {
	if len(st) == 0 || s == "" {
		return s
	}
	return "\033[" + strings.Join(st, ";") + "m" + s + ansiReset
}

// headerStyle returns the style for index, symbol and timer fragments.
func headerStyle(lvl Level, flags Flags) style {
	var st style
	if !flags.Has(FlagNoBold) {
		st = append(st, sgrBold)
	}
	if !flags.Has(FlagNoColor) {
		st = append(st, lvl.info().colors...)
	}
	return st
}

// bodyStyle returns the style for the message text. Only error, success and
// critical bodies are bold.
func bodyStyle(lvl Level, flags Flags) style {
	li := lvl.info()
	var st style
	if li.boldBody && !flags.Has(FlagNoBold) {
		st = append(st, sgrBold)
	}
	if !flags.Has(FlagNoColor) {
		st = append(st, li.colors...)
	}
	return st
}

// formatElapsed renders d as milliseconds with three decimals.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}

// formatHeader builds the bracketed prefix of an entry, including the
// trailing space. The header is empty when both index and symbol are hidden.
func formatHeader(lvl Level, index uint16, flags Flags, elapsed time.Duration) string {
	if flags.Has(flagsNoHeader) {
		return ""
	}
	st := headerStyle(lvl, flags)

	var b strings.Builder
	b.Grow(32)
	b.WriteByte('[')
	if !flags.Has(FlagNoIndex) {
		b.WriteString(st.apply(fmt.Sprintf("%04x", index)))
	}
	if flags&flagsNoHeader == 0 {
		b.WriteByte(':')
	}
	if !flags.Has(FlagNoSymbol) {
		b.WriteString(st.apply(lvl.Symbol()))
	}
	b.WriteByte(']')
	if flags.Has(FlagTimer) {
		b.WriteByte('(')
		b.WriteString(st.apply(formatElapsed(elapsed)))
		b.WriteByte(')')
	}
	b.WriteByte(' ')
	return b.String()
}

// formatBody styles the message text.
func formatBody(lvl Level, msg string, flags Flags) string {
	return bodyStyle(lvl, flags).apply(msg)
}

// formatLine renders one complete, newline-terminated entry.
func formatLine(lvl Level, index uint16, flags Flags, elapsed time.Duration, msg string) string {
	return formatHeader(lvl, index, flags, elapsed) + formatBody(lvl, msg, flags) + "\n"
}
