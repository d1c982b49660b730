package ports

// VersionNormalizer canonicalizes package version strings.
//
//go:generate go run go.uber.org/mock/mockgen -source=normalizer.go -destination=mocks/mock_normalizer.go -package=mocks
type VersionNormalizer interface {
	// Normalize returns the canonical spelling of version.
	// Returns domain.ErrInvalidVersion if version cannot be parsed.
	Normalize(version string) (string, error)
}
