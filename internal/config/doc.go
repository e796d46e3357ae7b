// Package config loads, normalizes, and validates supervisorctl configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours the SUPERVISOR_URL, SUPERVISOR_USERNAME and
// SUPERVISOR_PASSWORD environment fallbacks for the default server. The
// Config type lists every supervisord the CLI can talk to.
package config
