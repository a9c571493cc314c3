package models

import "time"

// SyncState - состояние локального изменения относительно сервера
type SyncState string

const (
	SyncSynced  SyncState = "synced"
	SyncPending SyncState = "pending"
	SyncFailed  SyncState = "failed"
)

type Sender string

const (
	SenderMe    Sender = "me"
	SenderOther Sender = "other"
)

// Message - сообщение в диалоге. Исходящие сообщения добавляются локально
// со статусом SyncPending: эндпоинта отправки у API нет
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Sender    Sender    `json:"sender"`
	Read      bool      `json:"read"`
	Image     string    `json:"image,omitempty"`
	Sync      SyncState `json:"-"`
}

// MessagePreview - последнее сообщение диалога для списка чатов
type MessagePreview struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	FromMe    bool      `json:"fromMe"`
}

// Conversation - диалог в списке чатов
type Conversation struct {
	ID          string         `json:"id"`
	Peer        Peer           `json:"user"`
	LastMessage MessagePreview `json:"lastMessage"`
	UnreadCount int            `json:"unreadCount"`
}
