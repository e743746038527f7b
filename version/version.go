// Package version holds build information, overridden at build time via -ldflags -X.
package version

//nolint:gochecknoglobals // set by the linker
var (
	name    = "lintreport"
	version = "dev"
	commit  = "unknown"
)

// Name returns the binary name.
func Name() string {
	return name
}

// Version returns the release version.
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from.
func Commit() string {
	return commit
}
