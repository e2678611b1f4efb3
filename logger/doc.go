// Package logger provides a small console logger that prints indexed,
// severity-tagged lines with optional colors and optional file mirroring.
//
// # Output
//
// Each entry is one line on standard error:
//
//	[0000:*] info
//	[0001:~] warning
//	[0002:!] error
//	[0003:+] success
//	[0004:%] critical
//
// The header holds a 16-bit hexadecimal index, which wraps after ffff with a
// warning, and a severity symbol. Header fragments are colored and bold;
// error, success and critical bodies are bold as well.
//
// # Features
//
//   - One method per severity: Debug, Info, Warn, Error, Success, Critical
//   - printf-style variants (Infof, Errorf, ...)
//   - Formatting controlled by an 8-bit option mask (see Flags)
//   - Plain-text file mirroring, or file-only output
//   - Elapsed time annotation in milliseconds
//   - Ordered asynchronous adapter (Logger.Async)
//   - Package-level default logger
//
// # Usage
//
//	l := logger.New()
//	if _, err := l.Configure(logger.Plain(), logger.FileDefault()); err != nil {
//	    return err
//	}
//	defer l.Close()
//
//	l.Info("server started")
//	l.Errorf("failed to connect: %v", err)
//
// Options are applied left to right. Flag options accumulate; Reset clears
// the mask:
//
//	l.Configure(logger.NoIndex(), logger.NoSymbol()) // "info"
//	l.Configure(logger.Reset())                      // "[0002:*] info"
//
// # File Output
//
// FileDefault creates forestry.log in the working directory, FilePath takes
// an explicit path and FileAt adopts an existing writer. File copies never
// contain escape sequences. FileOnly silences the console; without a file it
// drops entries and prints a single warning.
//
// Write failures on the log file are returned from the logging call.
// This package has no level filtering: every call prints.
package logger
