package database

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ConnectionError reports that the database could not be reached, either
// while opening the handle or when a statement tried to dial.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("falha ao conectar ao banco de dados: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func classify(err error) error {
	if err == nil {
		return nil
	}

	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return err
	}

	var pgErr *pgconn.ConnectError
	var opErr *net.OpError
	if errors.As(err, &pgErr) || errors.As(err, &opErr) || errors.Is(err, driver.ErrBadConn) {
		return &ConnectionError{Err: err}
	}
	return err
}

// registerErrorCallbacks makes every gorm statement report dial failures
// as *ConnectionError.
func registerErrorCallbacks(db *gorm.DB) error {
	wrap := func(tx *gorm.DB) {
		if tx.Error != nil {
			tx.Error = classify(tx.Error)
		}
	}

	cb := db.Callback()
	const name = "acervo:connection_error"
	return errors.Join(
		cb.Create().After("gorm:create").Register(name, wrap),
		cb.Query().After("gorm:query").Register(name, wrap),
		cb.Update().After("gorm:update").Register(name, wrap),
		cb.Delete().After("gorm:delete").Register(name, wrap),
		cb.Row().After("gorm:row").Register(name, wrap),
		cb.Raw().After("gorm:raw").Register(name, wrap),
	)
}
