package model

// Version is the release version, overridden at build time via -ldflags.
var Version = "dev"

// Request captures a single browse invocation. Files must not be empty by
// the time a driver script is generated; discovery fills it first. A fresh
// Request is built per invocation, never reused.
type Request struct {
	Files       []string // file paths or glob patterns, passed through verbatim
	Browser     Browser
	Colormap    string // empty means the renderer's default
	Interpreter string // command used to run the driver script
}
