// Package store holds the in-memory word history kept for each browser
// session. Records are never persisted beyond the life of the process.
package store
