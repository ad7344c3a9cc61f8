package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestRetrierPermanentErrorNotRetried(t *testing.T) {
	retrier := NewRetrier()

	calls := 0
	boom := errors.New("constraint violation")

	err := retrier.Retry(context.Background(), func() error {
		calls++
		return boom
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected original error, got %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", calls)
	}
}

func TestRetrierRetriesDeadlock(t *testing.T) {
	retrier := NewRetrier()
	retrier.initialInterval = 0

	calls := 0

	err := retrier.Retry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: pgErrDeadlock}
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}

	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestRetrierGivesUpAfterMaxRetries(t *testing.T) {
	retrier := NewRetrier()
	retrier.initialInterval = 0
	retrier.maxRetries = 2

	calls := 0
	deadlock := &pgconn.PgError{Code: pgErrSerializationFailure}

	err := retrier.Retry(context.Background(), func() error {
		calls++
		return deadlock
	})

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		t.Fatalf("expected pg error, got %v", err)
	}

	if calls != 3 { // initial attempt + 2 retries
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"deadlock", &pgconn.PgError{Code: pgErrDeadlock}, true},
		{"serialization failure", &pgconn.PgError{Code: pgErrSerializationFailure}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
