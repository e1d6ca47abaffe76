// Package database provides connection pool management for PostgreSQL.
//
// One long-lived pool is created at startup and shared across pipeline
// invocations; ownership stays with the caller.
package database
