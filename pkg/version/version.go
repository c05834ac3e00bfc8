// Package version records the build metadata stamped into release binaries.
package version

// Build metadata, overridden at link time via -ldflags:
//
//	-X github.com/JeffBelgum/statistical/pkg/version.Version=v1.0.0
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git revision the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
