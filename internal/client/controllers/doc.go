// Package controllers holds the per-role screen state of the shell.
//
// Each controller owns the lists shown on its screens and talks to the
// backend through a narrow interface satisfied by *client.Client. Lists are
// only ever changed from the response of a successful call; a failed load
// leaves an empty list and the error message.
package controllers
