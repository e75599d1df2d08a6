// Package errs defines the application's error types.
//
// Its purpose is to give callers of the data-access layer failures they can
// tell apart: a missing row, a duplicate email, an unreachable database and
// a malformed statement all arrive as distinct kinds instead of a log line
// and an empty result.
//
//   - Error carries a Kind, a machine-friendly Code and a human message.
//   - QueryError marks a failed statement execution and names the operation.
//   - Both play nicely with errors.Is / errors.As.
package errs
