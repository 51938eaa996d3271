package repository

import "pic-share-server/internal/model"

type UserStore interface {
	FindByID(id string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Create(user *model.User) error
	UpdateAboutByID(userID string, about string) error
	UsernameExists(username string) (bool, error)
}
