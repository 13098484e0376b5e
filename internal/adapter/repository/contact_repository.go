package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/contact"
)

// ErrContactPersistence indica falha do banco no registro de contatos
var ErrContactPersistence = errors.New("erro de banco de dados no registro de contatos")

// ContactRepository implementa a interface contact.Repository
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository cria uma nova instância de ContactRepository
func NewContactRepository(db *pgxpool.Pool) contact.Repository {
	return &ContactRepository{
		db: db,
	}
}

// Create implementa contact.Repository.Create
func (r *ContactRepository) Create(ctx context.Context, c *contact.ContactRequest) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO contact_requests (id, name, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Email, c.Message, c.CreatedAt)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrContactPersistence, err)
	}

	return nil
}

// List implementa contact.Repository.List
func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]*contact.ContactRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, message, created_at
		 FROM contact_requests
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContactPersistence, err)
	}
	defer rows.Close()

	var contacts []*contact.ContactRequest
	for rows.Next() {
		var c contact.ContactRequest
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContactPersistence, err)
		}
		contacts = append(contacts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContactPersistence, err)
	}

	return contacts, nil
}

// Count implementa contact.Repository.Count
func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM contact_requests").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrContactPersistence, err)
	}

	return count, nil
}
