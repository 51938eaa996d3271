package model

import "time"

type Image struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Filename    string    `json:"filename" gorm:"not null;unique;size:80"`
	Format      string    `json:"format" gorm:"not null;size:5"`
	Author      string    `json:"author" gorm:"not null;size:80"`
	AuthorID    string    `json:"author_id" gorm:"not null;size:36;index"`
	CreatedAt   time.Time `json:"created" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"size:5000"`
	User        User      `json:"-" gorm:"foreignKey:AuthorID;references:ID"`
}
