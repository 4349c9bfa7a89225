// Package utils holds small helpers shared by the repair providers and the
// CLI: a synchronous JSON POST helper with typed failures ([DoPostSync],
// [StatusError], [DecodeError]) and string helpers for logging and display.
package utils
