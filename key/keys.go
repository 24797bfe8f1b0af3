// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 11

// Collection Defaults - these keys govern which stored collection commands operate on and how it is displayed.
const (
	CollectionDefault      = "collection.default"
	CollectionShowCapacity = "collection.show_capacity"
	CollectionWrap         = "collection.wrap"
)

// Script Execution - these keys configure batch execution of collection operations.
const (
	ScriptStopOnError = "script.stop_on_error"
	ScriptEcho        = "script.echo"
)

// Benchmarking - these keys configure the append/remove stress run.
const (
	BenchCount = "bench.count"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored = "cli.colored"
)
