package main

// Exit codes shared by all commands.
const (
	ExitSuccess          = 0 // Success
	ExitError            = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError      = 2 // Configuration error (bad config values, missing input files, unknown strict rule)
	ExitDataError        = 3 // Data error (unparseable dataset or policies, unresolved version, bad rule params)
	ExitValidationFailed = 4 // Issues at or above the --fail-on severity
)
