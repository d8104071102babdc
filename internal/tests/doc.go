// Package tests holds end-to-end tests that drive the enigma command
// against key sheet files on disk.
package tests
