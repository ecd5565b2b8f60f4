package repository

import "github.com/jmoiron/sqlx"

type Repositories struct {
	Posts PostRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Posts: NewPostRepository(db),
	}
}
