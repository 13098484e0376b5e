package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/message"
)

// ErrMessagePersistence indica falha do banco ao gravar ou consultar o histórico
var ErrMessagePersistence = errors.New("erro de banco de dados no histórico de conversas")

// MessageRepository implementa a interface message.Repository
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository cria uma nova instância de MessageRepository
func NewMessageRepository(db *pgxpool.Pool) message.Repository {
	return &MessageRepository{
		db: db,
	}
}

// Append implementa message.Repository.Append
func (r *MessageRepository) Append(ctx context.Context, userName, text string, role message.Role) (*message.Message, error) {
	m, err := message.NewMessage(userName, text, role)
	if err != nil {
		return nil, err
	}

	m.ID = uuid.New().String()
	m.CreatedAt = time.Now().UTC()

	_, err = r.db.Exec(ctx,
		`INSERT INTO messages (id, user_name, text, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.UserName, m.Text, m.Role, m.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMessagePersistence, err)
	}

	return m, nil
}

// FindByUser implementa message.Repository.FindByUser
func (r *MessageRepository) FindByUser(ctx context.Context, userName string, limit, offset int) ([]*message.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_name, text, role, created_at
		 FROM messages
		 WHERE user_name = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMessagePersistence, err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// Search implementa message.Repository.Search
func (r *MessageRepository) Search(ctx context.Context, filter message.Filter, limit, offset int) ([]*message.Message, error) {
	where, args := buildMessageFilter(filter)

	query := fmt.Sprintf(
		`SELECT id, user_name, text, role, created_at
		 FROM messages%s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMessagePersistence, err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// CountByFilter implementa message.Repository.CountByFilter
func (r *MessageRepository) CountByFilter(ctx context.Context, filter message.Filter) (int, error) {
	where, args := buildMessageFilter(filter)

	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM messages"+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMessagePersistence, err)
	}

	return count, nil
}

// buildMessageFilter monta a cláusula WHERE e os argumentos da consulta
// a partir dos campos preenchidos do filtro
func buildMessageFilter(filter message.Filter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	addCondition := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.UserName != "" {
		addCondition("user_name ILIKE $%d", "%"+filter.UserName+"%")
	}
	if filter.Text != "" {
		addCondition("text ILIKE $%d", "%"+filter.Text+"%")
	}
	if filter.Role != "" {
		addCondition("role = $%d", string(filter.Role))
	}
	if filter.From != nil {
		addCondition("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		addCondition("created_at <= $%d", *filter.To)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

type messageRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanMessages lê as linhas da consulta para entidades de domínio
func scanMessages(rows messageRows) ([]*message.Message, error) {
	var messages []*message.Message
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.UserName, &m.Text, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMessagePersistence, err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMessagePersistence, err)
	}

	return messages, nil
}
