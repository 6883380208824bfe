package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
}

type UserSettings struct {
	gorm.Model
	UserID              uint   `gorm:"uniqueIndex;not null"`
	Theme               string `gorm:"default:light"`  // light, dark, auto
	FontSize            string `gorm:"default:medium"` // small, medium, large
	Language            string `gorm:"default:en"`
	Translation         string `gorm:"default:kjv"`
	ShowOriginalText    bool
	EmailNotifications  bool `gorm:"default:true"`
	PushNotifications   bool
	ReadingReminderTime string `gorm:"default:09:00"`
}
