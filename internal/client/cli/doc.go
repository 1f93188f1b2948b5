// Package cli implements the interactive hrverify terminal client.
//
// The App keeps a current route (see package routes) and offers the
// commands of that route plus a few global ones (help, go, logout, exit).
// Entering a dashboard loads its lists; entering login or signup starts a
// fresh authflow.Flow. A 401 from any request outside those two screens
// sends the user back to login, whatever command was running.
//
// Interactive input goes through package-level seams (getSimpleText,
// getPassword, printlnFn) so tests can drive commands without a terminal.
package cli
