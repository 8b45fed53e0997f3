// Package hellolib is a tiny greeting library used to exercise
// build, link, and load pipelines.
package hellolib

import (
	"fmt"
	"io"
	"os"
)

// Greeting formats the greeting message for target.
func Greeting(target string) string {
	return fmt.Sprintf("Hello %s!", target)
}

// WriteGreeting writes the greeting line for target to w as a single
// write. The target passes through verbatim: no validation, no escaping,
// empty strings allowed. Returns the sink's write error, if any.
func WriteGreeting(w io.Writer, target string) error {
	_, err := fmt.Fprintf(w, "Hello %s!\n", target)
	return err
}

// SayHello writes the greeting line for target to standard output.
// Write errors are discarded, matching the historical behavior of the
// fixture this library replaces.
func SayHello(target string) {
	_ = WriteGreeting(os.Stdout, target)
}
