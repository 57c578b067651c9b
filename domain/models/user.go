package models

import "time"

// User ถูกสร้างตอน register และไม่มีการแก้ไขหลังจากนั้น
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Tasks        []Task    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
