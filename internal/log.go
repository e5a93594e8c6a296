package internal

import "github.com/tliron/commonlog"

// the backend is registered by the application, so the logger is looked up on every use
var warn = func(message string, keysAndValues ...any) {
	commonlog.GetLogger("extraterm.scheduler").Warning(message, keysAndValues...)
}
