// Package model holds the row types read from and written to the database.
//
// Money is kept in minor currency units (cents) exactly as stored in the
// cost_per_night column.
package model
