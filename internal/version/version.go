// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Mouse hover pause and labels, inner-planet depth ordering, headless export
// 0.1.0 - Initial release: animated orrery in the terminal
