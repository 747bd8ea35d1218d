package domain

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Admin        bool   `json:"admin"`
	PasswordHash string `json:"-" gorm:"column:psw;size:60;not null"`
	Mail         string `json:"mail,omitempty" gorm:"size:100"`
}
