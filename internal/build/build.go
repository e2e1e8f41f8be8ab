// Package build holds build-time information.
package build

// Version is the stashql release. Release builds set it with
// -ldflags "-X go.trai.ch/stashql/internal/build.Version=...".
var Version = "dev"
