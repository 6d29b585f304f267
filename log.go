package thin

import "github.com/go-theft-auto/thin/internal/logging"

// thinLogger is the logger for the application driver.
var thinLogger = logging.New("thin")

// SetVerbose enables or disables debug logging in every thin package.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	logging.SetVerbose(v)
}
