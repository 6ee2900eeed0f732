package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. It prints to stderr with
// timestamps so report bytes on stdout stay clean for piping.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})
