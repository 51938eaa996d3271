package service

import (
	"pic-share-server/internal/config"
	repo "pic-share-server/internal/repository"
)

type AuthService struct {
	userStore repo.UserStore
}

type UserService struct {
	userStore  repo.UserStore
	imageStore repo.ImageStore
}

type ImageService struct {
	imageStore repo.ImageStore
	uploadCfg  config.UploadConfig
}

type GalleryService struct {
	imageStore repo.ImageStore
}

type MetadataService struct {
	uploadCfg config.UploadConfig
}

func NewAuthService(userStore repo.UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

func NewUserService(userStore repo.UserStore, imageStore repo.ImageStore) *UserService {
	return &UserService{userStore: userStore, imageStore: imageStore}
}

func NewImageService(imageStore repo.ImageStore, uploadCfg config.UploadConfig) *ImageService {
	return &ImageService{imageStore: imageStore, uploadCfg: uploadCfg}
}

func NewGalleryService(imageStore repo.ImageStore) *GalleryService {
	return &GalleryService{imageStore: imageStore}
}

func NewMetadataService(uploadCfg config.UploadConfig) *MetadataService {
	return &MetadataService{uploadCfg: uploadCfg}
}

// AppService 聚合全部业务服务，由 main 构建后注入各 Handler。
// 不使用进程级单例，便于测试时替换存储句柄。
type AppService struct {
	Auth     *AuthService
	User     *UserService
	Image    *ImageService
	Gallery  *GalleryService
	Metadata *MetadataService
}

func NewAppService(repos *repo.Repositories, uploadCfg config.UploadConfig) *AppService {
	return &AppService{
		Auth:     NewAuthService(repos.User),
		User:     NewUserService(repos.User, repos.Image),
		Image:    NewImageService(repos.Image, uploadCfg),
		Gallery:  NewGalleryService(repos.Image),
		Metadata: NewMetadataService(uploadCfg),
	}
}
