package version

// Version is set at release time via
// -ldflags "-X multicomponent/internal/version.Version=<tag>".
var Version = "0.2.0"
