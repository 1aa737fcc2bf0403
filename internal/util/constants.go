// Package util provides constants and small helpers shared across sshs. It
// imports no other internal package so anything may depend on it.
package util

const (
	// AppName names the binary and its settings directory.
	AppName = "sshs"

	// DefaultConfigDir and DefaultConfigFile locate the connection list
	// relative to the user's home directory: ~/.ssh/sshs.json.
	DefaultConfigDir  = ".ssh"
	DefaultConfigFile = "sshs.json"

	// SSHBinary is the client executable, resolved through PATH.
	SSHBinary = "ssh"

	// DefaultPrompt is the picker title when settings do not override it.
	DefaultPrompt = "Select a connection"

	// DefaultAccentColor is ANSI bright cyan, used for the highlighted item
	// and the "Connecting to" line.
	DefaultAccentColor = "14"

	// DefaultLogLevel keeps a normal run silent apart from the prompt.
	DefaultLogLevel = "warn"
)
