// Package sessions expires stale session tokens.
//
// Every row of the session sheet carries a timestamp column. Rows older than the configured
// TTL are cleared in as few ranges as possible, one range per run of consecutive rows.
package sessions
