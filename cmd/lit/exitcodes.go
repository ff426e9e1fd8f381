package main

// Exit codes used across all lit commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (no shelf, invalid paths)
	ExitDataError   = 3 // Data error (validation failure, no matching entry)
	ExitAmbiguous   = 4 // Multiple candidates, selection required or out of range
)
