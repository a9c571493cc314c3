package api

import (
	"strings"
	"time"

	"socialclient/models"
)

// Сырые формы ответов API. Декодируются и преобразуются в models.* ровно
// один раз, на границе клиента - страницы с ними не работают

type userSchema struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	Website        string    `json:"website"`
	Followers      []string  `json:"followers"`
	Following      []string  `json:"following"`
	CreatedAt      time.Time `json:"createdAt"`
}

type postSchema struct {
	ID        string     `json:"_id"`
	UserID    userSchema `json:"userId"`
	Content   string     `json:"content"`
	Image     string     `json:"image"`
	Video     string     `json:"video"`
	CreatedAt time.Time  `json:"createdAt"`
	Likes     []string   `json:"likes"`
	Comments  []string   `json:"comments"`
	Shares    int        `json:"shares"`
	SavedBy   []string   `json:"savedBy"`
}

type commentSchema struct {
	ID        string     `json:"_id"`
	PostID    string     `json:"postId"`
	UserID    userSchema `json:"userId"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
}

type conversationSchema struct {
	ID   string `json:"id"`
	User struct {
		ID         string     `json:"id"`
		Name       string     `json:"name"`
		Avatar     string     `json:"avatar"`
		Online     bool       `json:"online"`
		LastActive *time.Time `json:"lastActive"`
	} `json:"user"`
	LastMessage struct {
		Text      string    `json:"text"`
		Timestamp time.Time `json:"timestamp"`
		Read      bool      `json:"read"`
		FromMe    bool      `json:"fromMe"`
	} `json:"lastMessage"`
	UnreadCount int `json:"unreadCount"`
}

func toUser(s userSchema) models.User {
	return models.User{
		ID:             s.ID,
		Name:           s.Name,
		Email:          s.Email,
		Username:       usernameFromEmail(s.Email),
		ProfilePicture: s.ProfilePicture,
		Bio:            s.Bio,
		Location:       s.Location,
		Website:        s.Website,
		Followers:      s.Followers,
		Following:      s.Following,
		CreatedAt:      s.CreatedAt,
	}
}

// toPost считает счетчики и флаги текущего пользователя из сырых списков.
// viewerID пустой - флаги LikedByMe/SavedByMe остаются false
func toPost(s postSchema, viewerID string) models.Post {
	return models.Post{
		ID:           s.ID,
		Author:       toUser(s.UserID),
		Content:      s.Content,
		Image:        s.Image,
		Video:        s.Video,
		CreatedAt:    s.CreatedAt,
		LikeCount:    len(s.Likes),
		CommentCount: len(s.Comments),
		ShareCount:   s.Shares,
		LikedByMe:    viewerID != "" && contains(s.Likes, viewerID),
		SavedByMe:    viewerID != "" && contains(s.SavedBy, viewerID),
		LikeSync:     models.SyncSynced,
		SaveSync:     models.SyncSynced,
	}
}

func toComment(s commentSchema) models.Comment {
	return models.Comment{
		ID:        s.ID,
		PostID:    s.PostID,
		Author:    toUser(s.UserID),
		Content:   s.Content,
		CreatedAt: s.CreatedAt,
	}
}

func toConversation(s conversationSchema) models.Conversation {
	return models.Conversation{
		ID: s.ID,
		Peer: models.Peer{
			ID:         s.User.ID,
			Name:       s.User.Name,
			Avatar:     s.User.Avatar,
			Online:     s.User.Online,
			LastActive: s.User.LastActive,
		},
		LastMessage: models.MessagePreview{
			Text:      s.LastMessage.Text,
			Timestamp: s.LastMessage.Timestamp,
			Read:      s.LastMessage.Read,
			FromMe:    s.LastMessage.FromMe,
		},
		UnreadCount: s.UnreadCount,
	}
}

// usernameFromEmail - отображаемый ник из локальной части email
func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
