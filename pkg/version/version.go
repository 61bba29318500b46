// Package version holds the build version reported by the server and CLIs.
package version

// Version is overridden at build time with -ldflags "-X reelsmith/pkg/version.Version=...".
var Version = "v0.1.0"
