// Package aliases persists user-chosen commit aliases.
//
// Store keeps a flat alias to commit reference mapping in a single JSON
// document that is read in full, mutated in memory, and replaced atomically.
// The store assumes a single writer: two concurrent invocations that both
// mutate the document race, and the last rename wins. Resolve turns raw user
// input into a CommitQuery, and Export and Import move the mapping between
// JSON, YAML, and TOML documents.
package aliases
