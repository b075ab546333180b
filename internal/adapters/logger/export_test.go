// export_test.go exports private functions for white-box testing.
package logger

// Exported aliases for the private error formatting functions and the
// console handler constructor.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
	NewConsoleHandler   = newConsoleHandler
)
