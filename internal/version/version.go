// internal/version/version.go
package version

// Version is the release version reported by -v/--version.
const Version = "0.1.0"
