package models

import "time"

// User - профиль пользователя, как его отдает API
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Username       string    `json:"username,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Location       string    `json:"location,omitempty"`
	Website        string    `json:"website,omitempty"`
	Followers      []string  `json:"followers,omitempty"`
	Following      []string  `json:"following,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Peer - собеседник в диалоге (облегченная версия User для списка чатов)
type Peer struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Avatar     string     `json:"avatar,omitempty"`
	Online     bool       `json:"online"`
	LastActive *time.Time `json:"lastActive,omitempty"`
}
