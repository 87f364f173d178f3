package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
)

// dupKeyConflict translates a MySQL duplicate-key failure (error 1062)
// into a ConflictError so handlers answer 409 instead of 500. Other
// errors pass through unchanged.
func dupKeyConflict(resource, msg string, err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return domain.ConflictError{Resource: resource, Msg: msg, Err: err}
	}
	return err
}
