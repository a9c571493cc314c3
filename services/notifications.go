package services

import (
	"sync"

	"socialclient/models"
)

// NotificationView - локальное состояние страницы уведомлений.
// Прочитанность меняется только на клиенте: эндпоинта mark-read у API нет
type NotificationView struct {
	mu    sync.Mutex
	items []models.Notification
}

func NewNotificationView() *NotificationView {
	return &NotificationView{}
}

func (v *NotificationView) SetNotifications(items []models.Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = append([]models.Notification(nil), items...)
}

func (v *NotificationView) Items() []models.Notification {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Notification(nil), v.items...)
}

func (v *NotificationView) MarkRead(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		if v.items[i].ID == id {
			v.items[i].Read = true
		}
	}
}

func (v *NotificationView) MarkAllRead() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		v.items[i].Read = true
	}
}

func (v *NotificationView) UnreadCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	count := 0
	for _, n := range v.items {
		if !n.Read {
			count++
		}
	}
	return count
}
