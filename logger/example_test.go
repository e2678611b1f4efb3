package logger_test

import (
	"os"

	"github.com/uptudev/forestry/logger"
)

// This example mirrors plain entries to standard output and silences the
// console.
func Example_fileOnly() {
	l := logger.New()
	if _, err := l.Configure(logger.FileAt(os.Stdout), logger.FileOnly()); err != nil {
		panic(err)
	}
	defer l.Close()

	l.Info("info")
	l.Warn("warning")
	l.Error("error")
	l.Success("success")
	l.Critical("critical")
	// Output:
	// [0000:*] info
	// [0001:~] warning
	// [0002:!] error
	// [0003:+] success
	// [0004:%] critical
}

// This example strips the header so entries are bare messages.
func ExampleBasic() {
	l := logger.New()
	l.Configure(logger.Basic(), logger.FileAt(os.Stdout), logger.FileOnly())
	defer l.Close()

	l.Info("just the message")
	// Output:
	// just the message
}

// This example shows the colorized default output on standard error.
func ExampleNew() {
	l := logger.New()
	l.Info("info")               // [0000:*] info
	l.Warn("warning")            // [0001:~] warning
	l.Errorf("oops: %v", "boom") // [0002:!] oops: boom
}

// This example writes through the ordered asynchronous adapter.
func ExampleLogger_Async() {
	l := logger.New()
	a := l.Async(16)
	defer a.Close()

	if err := <-a.Info("queued"); err != nil {
		panic(err)
	}
}
