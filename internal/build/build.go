// Package build holds build-time information.
package build

// Version is the application version. It defaults to "dev" and is set at
// release time with -ldflags "-X go.trai.ch/taskid/internal/build.Version=...".
var Version = "dev"
