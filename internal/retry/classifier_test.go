package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresClassifier_IsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"connection failure 08006", &pgconn.PgError{Code: "08006"}, true},
		{"connection exception 08000", &pgconn.PgError{Code: "08000"}, true},
		{"too many connections 53300", &pgconn.PgError{Code: "53300"}, true},
		{"admin shutdown 57P01", &pgconn.PgError{Code: "57P01"}, true},
		{"cannot connect now 57P03", &pgconn.PgError{Code: "57P03"}, true},
		{"serialization failure 40001", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock 40P01", &pgconn.PgError{Code: "40P01"}, true},
		{"lock not available 55P03", &pgconn.PgError{Code: "55P03"}, true},
		{"undefined table 42P01", &pgconn.PgError{Code: "42P01"}, false},
		{"unique violation 23505", &pgconn.PgError{Code: "23505"}, false},
		{"invalid password 28P01", &pgconn.PgError{Code: "28P01"}, false},
		{"connection refused syscall", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, true},
		{"connection reset syscall", &net.OpError{Op: "read", Err: syscall.ECONNRESET}, true},
		{"temporary dns", &net.DNSError{Err: "server misbehaving", IsTemporary: true}, true},
		{"permanent dns", &net.DNSError{Err: "no such host", IsNotFound: true}, false},
		{"message connection refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), true},
		{"message server closed", errors.New("server closed the connection unexpectedly"), true},
		{"canceled", context.Canceled, false},
		{"generic", errors.New("something else"), false},
	}

	c := PostgresClassifier{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsTransient(tt.err))
		})
	}
}

func TestPostgresClassifier_WrappedErrors(t *testing.T) {
	c := PostgresClassifier{}

	wrapped := fmt.Errorf("ping: %w", &pgconn.PgError{Code: "08006"})
	assert.True(t, c.IsTransient(wrapped))

	wrappedFatal := fmt.Errorf("query: %w", &pgconn.PgError{Code: "42601"})
	assert.False(t, c.IsTransient(wrappedFatal))
}
