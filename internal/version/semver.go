package version

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer is a parsed major.minor.patch version.
type SemVer struct {
	Major int
	Minor int
	Patch int
}

func (v SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseSemVer parses a version string like "4.0.5", "v3.00" or "2.94".
// Missing components default to zero; pre-release and build suffixes on
// the patch component are ignored. Transmission daemons report versions
// in this shape.
func ParseSemVer(s string) (SemVer, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "v")
	// Daemons append build details after a space, e.g. "4.0.5 (abc123)".
	if idx := strings.IndexByte(s, ' '); idx != -1 {
		s = s[:idx]
	}
	if s == "" {
		return SemVer{}, fmt.Errorf("empty version string")
	}

	parts := strings.SplitN(s, ".", 3)
	var v SemVer

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return SemVer{}, fmt.Errorf("invalid major version %q: %w", parts[0], err)
	}
	v.Major = major

	if len(parts) >= 2 {
		minor, err := strconv.Atoi(parts[1])
		if err != nil {
			return SemVer{}, fmt.Errorf("invalid minor version %q: %w", parts[1], err)
		}
		v.Minor = minor
	}

	if len(parts) >= 3 {
		patchStr := parts[2]
		if idx := strings.IndexAny(patchStr, "-+"); idx != -1 {
			patchStr = patchStr[:idx]
		}
		patch, err := strconv.Atoi(patchStr)
		if err != nil {
			return SemVer{}, fmt.Errorf("invalid patch version %q: %w", parts[2], err)
		}
		v.Patch = patch
	}

	return v, nil
}

// Compare returns -1 if a < b, 0 if a == b, 1 if a > b.
func Compare(a, b SemVer) int {
	if a.Major != b.Major {
		if a.Major < b.Major {
			return -1
		}
		return 1
	}
	if a.Minor != b.Minor {
		if a.Minor < b.Minor {
			return -1
		}
		return 1
	}
	if a.Patch != b.Patch {
		if a.Patch < b.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// IsOlderThan returns true if a is strictly older than b.
func (a SemVer) IsOlderThan(b SemVer) bool {
	return Compare(a, b) < 0
}
