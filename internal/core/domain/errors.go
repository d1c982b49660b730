package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is returned when a required identifier field is missing or malformed.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrInvalidVersion is returned when a version string cannot be normalized.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrAlreadyPinned is returned when pinning a name that is already pinned in the same namespace.
	ErrAlreadyPinned = zerr.New("already pinned")

	// ErrPinNotFound is returned when a requested pin does not exist.
	ErrPinNotFound = zerr.New("pin not found")

	// ErrUnknownPinKind is returned when a pin kind cannot be parsed.
	ErrUnknownPinKind = zerr.New("unknown pin kind, expected 'assembly', 'package' or 'repo'")

	// ErrPackageNotFound is returned when a package registration is required but does not exist.
	ErrPackageNotFound = zerr.New("package not registered")

	// ErrDocumentNotFound is returned when a persisted document does not exist.
	ErrDocumentNotFound = zerr.New("document not found")

	// ErrStoreCreateFailed is returned when a store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrStoreReadFailed is returned when a persisted document cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read document")

	// ErrStoreUnmarshalFailed is returned when a persisted document cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal document")

	// ErrStoreMarshalFailed is returned when a document cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal document")

	// ErrStoreWriteFailed is returned when a document cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write document")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidLogLevel is returned when a configured log level is not recognized.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrNoManagedDirectory is returned when no managed directory could be determined.
	ErrNoManagedDirectory = zerr.New("could not determine the xrepo directory")
)
