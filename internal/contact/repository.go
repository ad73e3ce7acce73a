package contact

//go:generate mockgen -destination=./repository_mock_test.go -package=contact -source=repository.go Repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"talk-connect-hub/internal/domain"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when no contact with the id belongs to the owner.
var ErrContactNotFound = errors.New("contact not found")

// Repository is the interface for all contact related database operations.
type Repository interface {
	// CreateContact inserts a new contact and fills in its id and creation time.
	CreateContact(ctx context.Context, c *domain.Contact) error
	// SearchContacts lists an owner's contacts matching query, favorites first.
	SearchContacts(ctx context.Context, ownerID uuid.UUID, query string) ([]*domain.Contact, error)
	// ToggleFavorite flips the favorite flag and returns the updated contact.
	ToggleFavorite(ctx context.Context, ownerID, contactID uuid.UUID) (*domain.Contact, error)
}

var schema = []string{`
	CREATE TABLE IF NOT EXISTS contacts (
		contact_id UUID PRIMARY KEY,
		owner_id   UUID NOT NULL,
		name       TEXT NOT NULL,
		number     TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		favorite   BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS contacts_owner_idx ON contacts (owner_id)`,
}

// EnsureSchema creates the contacts table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not create contacts table: %w", err)
		}
	}
	return nil
}

// postgresRepository is the concrete implementation of the Repository that uses a Postgres database
type postgresRepository struct {
	db *sql.DB // The database connection pool.
}

// NewPostgresRepository is the constructor for the repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{
		db: db,
	}
}

const contactColumns = `contact_id, owner_id, name, number, email, favorite, created_at`

func scanContact(row interface{ Scan(...any) error }) (*domain.Contact, error) {
	c := &domain.Contact{}
	err := row.Scan(&c.ContactID, &c.OwnerID, &c.Name, &c.Number, &c.Email, &c.Favorite, &c.CreatedAt)
	return c, err
}

// CreateContact inserts a new row into the contacts table.
func (pr *postgresRepository) CreateContact(ctx context.Context, c *domain.Contact) error {
	c.ContactID = uuid.New()

	query := `
		INSERT INTO contacts (contact_id, owner_id, name, number, email, favorite)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := pr.db.QueryRowContext(ctx, query,
		c.ContactID,
		c.OwnerID,
		c.Name,
		c.Number,
		c.Email,
		c.Favorite,
	).Scan(&c.CreatedAt)

	if err != nil {
		return fmt.Errorf("could not insert contact: %w", err)
	}
	return nil
}

// SearchContacts matches query against name, number and email, ignoring case.
func (pr *postgresRepository) SearchContacts(ctx context.Context, ownerID uuid.UUID, query string) ([]*domain.Contact, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	q := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE owner_id = $1
		  AND (name ILIKE $2 OR number ILIKE $2 OR email ILIKE $2)
		ORDER BY favorite DESC, lower(name) ASC, created_at ASC
	`
	rows, err := pr.db.QueryContext(ctx, q, ownerID, pattern)
	if err != nil {
		return nil, fmt.Errorf("could not search contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not search contacts: %w", err)
	}
	return contacts, nil
}

// ToggleFavorite flips the flag in one statement so concurrent toggles do not lose updates.
func (pr *postgresRepository) ToggleFavorite(ctx context.Context, ownerID, contactID uuid.UUID) (*domain.Contact, error) {
	q := `
		UPDATE contacts SET favorite = NOT favorite
		WHERE contact_id = $1 AND owner_id = $2
		RETURNING ` + contactColumns

	c, err := scanContact(pr.db.QueryRowContext(ctx, q, contactID, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("could not toggle favorite: %w", err)
	}
	return c, nil
}

// escapeLike makes % and _ in user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
