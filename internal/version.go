package internal

// Version is the espada release, overridden at build time via -ldflags
var Version = "0.3.0"
