package version

// Version is set at build time via ldflags:
//
//	-X github.com/bnema/conference-tracks/internal/version.Version=X.Y.Z
var Version = "dev"
