// Package daemon runs the vcshelld HTTP bridge as a single instance.
//
// A Daemon owns an advisory lock file in the log directory so two bridges
// cannot serve the same configuration, and manages the lifecycle of the
// bridge server built from the preset resolver and invocation bridge.
package daemon
