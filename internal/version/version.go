// Package version holds the murmur build version.
package version

// Version is stamped by the release build via ldflags. Source builds
// report "dev".
var Version = "dev"

// UserAgent identifies murmur in outgoing HTTP requests.
func UserAgent() string {
	return "murmur/" + Version
}
