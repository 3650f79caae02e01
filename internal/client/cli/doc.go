// Package cli implements the interactive terminal client for the
// ReWear platform: a REPL over the auth, admin, and catalog
// subsystems. Command handlers live on App; the REPL loop itself only
// parses input and dispatches.
package cli
