// Package service contains the call-site layer.
//
// It sits between the command line and the repository layer:
// it applies configured defaults, logs every data-access call
// with its outcome, and hands errors back unchanged so callers
// can inspect the *errs.QueryError.
package service

import (
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/rs/zerolog"
)

// logResult records one data-access call.
func logResult(log *zerolog.Logger, op string, start time.Time, count int, err error) {
	if err != nil {
		log.Error().
			Err(err).
			Str("operation", op).
			Str("kind", string(errs.KindOf(err))).
			Dur("duration", time.Since(start)).
			Msg("data access failed")
		return
	}

	log.Debug().
		Str("operation", op).
		Int("count", count).
		Dur("duration", time.Since(start)).
		Msg("data access completed")
}
