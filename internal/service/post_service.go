package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/domain"
	"kenangan-bot/internal/repository"
)

type PostService interface {
	// CreatePost inserts one post row. A failed insert after a successful
	// upload leaves the stored object in place; there is no rollback.
	CreatePost(ctx context.Context, ownerID, storagePath, title, description string, keywords []string) error
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) CreatePost(ctx context.Context, ownerID, storagePath, title, description string, keywords []string) error {
	post := &domain.Post{
		ID:         uuid.New(),
		UserID:     ownerID,
		Image:      storagePath,
		Title:      title,
		Caption:    description,
		MemoryWord: domain.JoinKeywords(keywords),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		log.Error().Err(err).Str("storage_path", storagePath).Msg("inserting post")
		return err
	}

	log.Info().Str("post_id", post.ID.String()).Str("title", title).Msg("post saved")
	return nil
}
