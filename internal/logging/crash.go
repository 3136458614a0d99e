package logging

import (
	"fmt"
	"os"
	"time"
)

// WriteCrash overwrites path with a crash report for value and its stack trace.
// Write failures are ignored: there is nowhere left to report them.
func WriteCrash(path string, value any, stack []byte) {
	report := fmt.Sprintf("hyprhelp crashed at %s\n\n%v\n\n%s",
		time.Now().Format(time.RFC3339), value, stack)
	_ = os.WriteFile(path, []byte(report), 0644)

	Logger.Error("Fatal error", "error", fmt.Sprint(value), "crash_log", path)
}
