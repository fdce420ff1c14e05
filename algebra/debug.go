package algebra

import (
	"fmt"
	"io"
	"os"
)

var debugOn = os.Getenv("ALGEBRA_DEBUG") == "1"

func dbg(w io.Writer, f string, a ...any) {
	if debugOn {
		fmt.Fprintf(w, f, a...)
	}
}

// check enforces a construction or call precondition. Violations are
// programmer errors, not recoverable conditions.
func check(cond bool, msg string) {
	if !cond {
		panic("algebra: " + msg)
	}
}
