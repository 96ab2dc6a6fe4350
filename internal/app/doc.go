// Package app wires the default collaborators (file I/O, key-ring,
// passphrase prompting) into the Wire the CLI commands operate against.
package app
