package service

import (
	"errors"
	"log"
	"pic-share-server/internal/common"
	"pic-share-server/internal/model"
	"pic-share-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser 创建新用户，用户名冲突返回 conflict 错误。
func (s *AuthService) RegisterUser(username, password string) (*model.User, error) {
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, common.NewValidationError(msg)
	}

	exists, err := s.userStore.UsernameExists(username)
	if err != nil {
		log.Printf("Check username error: %v\n", err)
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}
	if exists {
		return nil, common.NewConflictError("该用户名已被注册")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}

	user := model.User{Username: username, Password: string(hashed)}
	if err := s.userStore.Create(&user); err != nil {
		// 并发注册同名用户时，唯一约束在这里兜底
		log.Printf("Create user error: %v\n", err)
		return nil, common.NewConflictError("该用户名已被注册")
	}

	return &user, nil
}

// LoginUser 校验用户名与密码，成功返回用户记录。
func (s *AuthService) LoginUser(username, password string) (*model.User, error) {
	user, err := s.userStore.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError("用户名不存在")
		}
		log.Printf("Find user error: %v\n", err)
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, common.NewUnauthorizedError("密码错误")
	}

	return user, nil
}
