package models

import "time"

// SessionRecord - единственная строка локального хранилища с токеном сессии.
// Все чтения и записи идут через services.SessionStore, ключ всегда один
type SessionRecord struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"size:255" json:"token"`
	UserJSON  string    `gorm:"type:text" json:"user_json"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SessionRecord) TableName() string {
	return "session"
}

// SessionRecordID - фиксированный ключ единственной строки сессии
const SessionRecordID int64 = 1
