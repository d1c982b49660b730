// Package nuget normalizes package versions the way NuGet feeds compare them.
package nuget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/xrepo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Normalizer implements ports.VersionNormalizer.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize canonicalizes version:
//   - missing minor and patch segments are filled with zero ("1.2" -> "1.2.0")
//   - a leading "v" and leading zeros are dropped
//   - build metadata is dropped, the pre-release label is kept
//   - a fourth segment is kept only when it is non-zero ("1.2.3.0" -> "1.2.3").
func (n *Normalizer) Normalize(version string) (string, error) {
	raw := strings.TrimSpace(version)
	if raw == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidVersion, "empty version"), "version", version)
	}

	base, _, _ := strings.Cut(raw, "+")
	core, pre, hasPre := strings.Cut(base, "-")
	core = strings.TrimPrefix(strings.TrimPrefix(core, "v"), "V")

	segments := strings.Split(core, ".")
	if len(segments) > 4 {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidVersion, "too many segments"), "version", version)
	}

	var revision uint64
	if len(segments) == 4 {
		r, err := strconv.ParseUint(segments[3], 10, 64)
		if err != nil {
			return "", invalidVersion(version, err)
		}
		revision = r
		segments = segments[:3]
	}
	for i, seg := range segments {
		segments[i] = trimLeadingZeros(seg)
	}

	semantic := strings.Join(segments, ".")
	if hasPre {
		semantic += "-" + pre
	}
	sv, err := semver.NewVersion(semantic)
	if err != nil {
		return "", invalidVersion(version, err)
	}

	if revision == 0 {
		return sv.String(), nil
	}

	out := strconv.FormatUint(sv.Major(), 10) + "." +
		strconv.FormatUint(sv.Minor(), 10) + "." +
		strconv.FormatUint(sv.Patch(), 10) + "." +
		strconv.FormatUint(revision, 10)
	if sv.Prerelease() != "" {
		out += "-" + sv.Prerelease()
	}
	return out, nil
}

// trimLeadingZeros turns "007" into "7" and "000" into "0". semver rejects padded segments.
func trimLeadingZeros(segment string) string {
	trimmed := strings.TrimLeft(segment, "0")
	if trimmed == "" && segment != "" {
		return "0"
	}
	return trimmed
}

func invalidVersion(version string, err error) error {
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidVersion, err), "version", version)
}
