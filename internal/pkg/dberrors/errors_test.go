package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"plain", errors.New("boom"), KindNone},
		{"not null", &pgconn.PgError{Code: CodeNotNullViolation}, KindNotNull},
		{"foreign key wrapped", fmt.Errorf("insert employee: %w", &pgconn.PgError{Code: CodeForeignKeyViolation}), KindForeignKey},
		{"unique", &pgconn.PgError{Code: CodeUniqueViolation}, KindUnique},
		{"too long", &pgconn.PgError{Code: CodeStringTooLong}, KindTooLong},
		{"other", &pgconn.PgError{Code: "42P01"}, KindOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestViolationHelpers(t *testing.T) {
	fk := fmt.Errorf("error creating employee: %w", &pgconn.PgError{Code: CodeForeignKeyViolation})

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsNotNullViolation(fk))
	assert.True(t, IsNotNullViolation(&pgconn.PgError{Code: CodeNotNullViolation}))
	assert.False(t, IsForeignKeyViolation(errors.New("timeout")))
}
