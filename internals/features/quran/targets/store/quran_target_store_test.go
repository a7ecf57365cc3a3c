package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapPGError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"pgx unique", &pgconn.PgError{Code: "23505"}, ErrConflict},
		{"pq unique", &pq.Error{Code: "23505"}, ErrConflict},
		{"pgx fk", &pgconn.PgError{Code: "23503"}, ErrConstraint},
		{"pq check", &pq.Error{Code: "23514"}, ErrConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapPGError(tt.err), tt.want)
		})
	}

	plain := errors.New("connection reset")
	assert.Same(t, plain, mapPGError(plain))

	other := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(other), mapPGError(other))
}
