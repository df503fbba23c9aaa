// export_test.go exports private functions for white-box testing.
package logger

// Exported for the error formatting tests.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
