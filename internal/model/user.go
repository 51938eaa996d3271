package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	Username  string    `json:"username" gorm:"unique;not null;size:80"`
	Password  string    `json:"-" gorm:"not null;size:300"`
	About     string    `json:"about" gorm:"size:5000"`
	Images    []Image   `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate 在插入前为每条记录生成独立的 UUID。
// 必须在钩子里调用工厂，避免所有实例共享同一个默认值。
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
