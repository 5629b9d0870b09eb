package assert

import "fmt"

// Assert panics when cond is false. The message is built with fmt.Sprintf,
// so call sites may use formatting directives.
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}

	panic(fmt.Sprintf(format, args...))
}

// NoError panics when err is non-nil. For errors that are programming
// mistakes rather than runtime conditions.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}
