package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	User  UserStore
	Image ImageStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}

func NewRepositories(user UserStore, image ImageStore) *Repositories {
	return &Repositories{
		User:  user,
		Image: image,
	}
}
