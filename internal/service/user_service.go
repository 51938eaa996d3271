package service

import (
	"errors"
	"log"
	"pic-share-server/internal/common"
	"pic-share-server/internal/model"
	"pic-share-server/internal/utils"

	"gorm.io/gorm"
)

// GetProfile 获取用户资料及其图片总数。
func (s *UserService) GetProfile(userID string) (*model.User, int64, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, common.NewNotFoundError("用户不存在")
		}
		log.Printf("Find user error: %v\n", err)
		return nil, 0, common.NewInternalError("获取用户资料失败")
	}

	count, err := s.imageStore.CountByAuthorID(user.ID)
	if err != nil {
		log.Printf("Count images error: %v\n", err)
		return nil, 0, common.NewInternalError("获取用户资料失败")
	}

	return user, count, nil
}

// UpdateAbout 更新用户简介，只有本人可以修改。
func (s *UserService) UpdateAbout(targetID, actorID, about string) error {
	if actorID != targetID {
		return common.NewForbiddenError("只能修改自己的简介")
	}

	if ok, msg := utils.ValidateAbout(about); !ok {
		return common.NewValidationError(msg)
	}

	if _, err := s.userStore.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("用户不存在")
		}
		return common.NewInternalError("更新简介失败")
	}

	if err := s.userStore.UpdateAboutByID(targetID, about); err != nil {
		log.Printf("Update about error: %v\n", err)
		return common.NewInternalError("更新简介失败")
	}

	return nil
}

// GetByID 按 ID 查询用户，会话校验后加载当前用户时使用。
func (s *UserService) GetByID(userID string) (*model.User, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError("会话已失效，请重新登录")
		}
		log.Printf("Find user error: %v\n", err)
		return nil, common.NewInternalError("查询用户失败")
	}
	return user, nil
}
