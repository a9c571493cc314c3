package models

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotifyLike    NotificationType = "like"
	NotifyComment NotificationType = "comment"
	NotifyFollow  NotificationType = "follow"
	NotifyMention NotificationType = "mention"
)

// Notification - уведомление. Read меняется только локально,
// эндпоинта "отметить прочитанным" у API нет
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Actor     User             `json:"actor"`
	Content   string           `json:"content,omitempty"`
	PostID    string           `json:"postId,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	Read      bool             `json:"read"`
}

// DisplayText возвращает текст уведомления. Единственное место,
// где тип уведомления превращается в строку для показа
func (n Notification) DisplayText() string {
	switch n.Type {
	case NotifyLike:
		return fmt.Sprintf("%s liked your post", n.Actor.Name)
	case NotifyComment:
		return fmt.Sprintf("%s commented: %s", n.Actor.Name, n.Content)
	case NotifyFollow:
		return fmt.Sprintf("%s started following you", n.Actor.Name)
	case NotifyMention:
		return fmt.Sprintf("%s mentioned you: %s", n.Actor.Name, n.Content)
	default:
		return fmt.Sprintf("%s sent you a notification", n.Actor.Name)
	}
}
