package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"kenangan-bot/internal/domain"
)

// ErrNoDatabase is returned when the database was not configured at startup.
var ErrNoDatabase = errors.New("database not configured")

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	if r.db == nil {
		return ErrNoDatabase
	}

	query := `
		INSERT INTO posts (post_id, user_id, image, title, caption, memory_word)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		post.ID, post.UserID, post.Image,
		post.Title, post.Caption, post.MemoryWord,
	).Scan(&post.CreatedAt)
}
