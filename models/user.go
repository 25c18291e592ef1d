package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Username     string `gorm:"unique;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}
