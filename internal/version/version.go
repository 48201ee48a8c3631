package version

// Version is set at build time via -ldflags.
// Version 在构建时通过 -ldflags 设置。
var Version = "dev"
