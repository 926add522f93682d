package employee

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	employeeerrors "go-employee/internal/employee/errors"
	"go-employee/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// mapRepositoryError classifies store failures. Absence is never an error
// here: repositories report it as nil, nil or false.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if isStoreUnavailable(err) {
		return apperror.Wrap(err, employeeerrors.ErrStoreUnavailable)
	}

	return err
}

// isStoreUnavailable reports connection level failures: the store could not
// be reached at all, as opposed to rejecting the operation.
func isStoreUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, redis.ErrClosed) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone)
}
