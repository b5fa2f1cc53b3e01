//go:build !hat_nodebug

package hat

import (
	"fmt"
	"runtime"
)

// debugChecks enables assertions on unchecked accessors.
const debugChecks = true

// assert panics with msg if condition does not hold. cond is the textual
// form of the condition and is reported together with the caller's location.
func assert(condition bool, cond, msg string) {
	if !condition {
		_, file, line, _ := runtime.Caller(1)
		panic(fmt.Sprintf("hat: %s (expected %s) at %s:%d", msg, cond, file, line))
	}
}
