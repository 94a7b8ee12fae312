package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/adso-sena/agenda/internal/contacts"
)

// SQLiteStore persists contacts in the contactos table created by the migrations.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an opened, migrated database.
func NewSQLiteStore(conn *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: conn}
}

const selectColumns = `SELECT id, nombre, telefono, correo, etiqueta, empresa FROM contactos`

func scanContact(row interface{ Scan(...any) error }) (contacts.Contact, error) {
	var c contacts.Contact
	if err := row.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.Correo, &c.Etiqueta, &c.Empresa); err != nil {
		return contacts.Contact{}, err
	}
	return c, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]contacts.Contact, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list contactos: %w", err)
	}
	defer rows.Close()

	items := make([]contacts.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contacto: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (contacts.Contact, error) {
	c, err := scanContact(s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return contacts.Contact{}, ErrNotFound
	}
	if err != nil {
		return contacts.Contact{}, fmt.Errorf("get contacto: %w", err)
	}
	return c, nil
}

func (s *SQLiteStore) Create(ctx context.Context, c contacts.Contact) (contacts.Contact, error) {
	c = assignID(c)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contactos (id, nombre, telefono, correo, etiqueta, empresa) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Nombre, c.Telefono, c.Correo, c.Etiqueta, c.Empresa,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return contacts.Contact{}, fmt.Errorf("%w %q", ErrDuplicateID, c.ID)
		}
		return contacts.Contact{}, fmt.Errorf("insert contacto: %w", err)
	}
	return c, nil
}

func (s *SQLiteStore) Update(ctx context.Context, id string, d contacts.Draft) (contacts.Contact, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE contactos SET nombre = ?, telefono = ?, correo = ?, etiqueta = ?, empresa = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		d.Nombre, d.Telefono, d.Correo, d.Etiqueta, d.Empresa, id,
	)
	if err != nil {
		return contacts.Contact{}, fmt.Errorf("update contacto: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return contacts.Contact{}, ErrNotFound
	}
	return d.WithID(id), nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contactos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contacto: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
