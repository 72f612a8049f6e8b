package errors

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// substring fallback for errors without a typed sentinel
var sanitizedByKeyword = []struct {
	keywords []string
	message  string
}{
	{[]string{"timeout", "deadline"}, "request timed out"},
	{[]string{"not found", "no rows"}, "resource not found"},
	{[]string{"database", "sql", "postgres", "pgx"}, "database operation failed"},
	{[]string{"connection", "network", "dial", "unavailable", "upstream"}, "upstream connection failed"},
	{[]string{"validation", "binding", "invalid", "required"}, "validation failed"},
}

// sanitizeError returns the message safe to put in a response body.
// Raw error text leaks schema and infrastructure details, so production
// maps errors to fixed phrases; other environments pass them through.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	if os.Getenv("ENVIRONMENT") != "production" {
		return err.Error()
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		return "database operation failed"
	case errors.Is(err, pgx.ErrNoRows):
		return "resource not found"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	}

	msg := strings.ToLower(err.Error())

	for _, entry := range sanitizedByKeyword {
		for _, kw := range entry.keywords {
			if strings.Contains(msg, kw) {
				return entry.message
			}
		}
	}

	return "an error occurred"
}
