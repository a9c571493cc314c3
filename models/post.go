package models

import "time"

// Post - пост в ленте с счетчиками и локальными флагами текущего пользователя
type Post struct {
	ID           string    `json:"id"`
	Author       User      `json:"author"`
	Content      string    `json:"content"`
	Image        string    `json:"image,omitempty"`
	Video        string    `json:"video,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	ShareCount   int       `json:"shareCount"`
	LikedByMe    bool      `json:"likedByMe"`
	SavedByMe    bool      `json:"savedByMe"`

	// Состояние синхронизации локальных переключений лайка/сохранения.
	// Сервер их не подтверждает, поэтому дальше Pending они не уходят.
	LikeSync SyncState `json:"-"`
	SaveSync SyncState `json:"-"`
}

// Comment - комментарий к посту
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
