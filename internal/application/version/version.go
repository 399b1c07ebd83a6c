package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Set at build time with -ldflags "-X bundle-cli/internal/application/version.version=...".
var (
	version = "0.0.0"
	commit  = "unknown"
)

func GetVersion() string {
	return version
}

func GetCommit() string {
	return commit
}

func GetNumericVersion() int {
	return ParseNumericVersion(version)
}

// ParseNumericVersion turns "1.2.3-beta" into 1002003. Unparsable versions
// yield 0.
func ParseNumericVersion(semVer string) int {
	v, err := semver.NewVersion(semVer)
	if err != nil {
		return 0
	}
	return int(v.Major()*1_000_000 + v.Minor()*1_000 + v.Patch())
}

// String is the text printed by the version command.
func String() string {
	return fmt.Sprintf("bundle-cli %s (#%d, commit %s)", version, GetNumericVersion(), commit)
}
