package service

import (
	"github.com/minio/minio-go/v7"

	"kenangan-bot/internal/config"
	"kenangan-bot/internal/repository"
)

type Services struct {
	Auth     AuthService
	Storage  StorageService
	Frames   FrameService
	Keywords KeywordService
	Posts    PostService
}

func NewServices(repos *repository.Repositories, minioClient *minio.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(cfg),
		Storage:  NewStorageService(minioClient, cfg),
		Frames:   NewFrameService(cfg.FrameSettleDelay),
		Keywords: NewKeywordService(cfg.OpenAIAPIKey),
		Posts:    NewPostService(repos.Posts),
	}
}
