package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"socialclient/config"
	"socialclient/models"
)

type LayoutMode string

const (
	LayoutSinglePane LayoutMode = "single-pane"
	LayoutTwoPane    LayoutMode = "two-pane"
)

// PaneState - какие панели видны при текущем состоянии
type PaneState struct {
	ShowList   bool
	ShowDetail bool
}

// ChatView - состояние страницы сообщений: выбранный диалог, буферы
// сообщений и режим раскладки по ширине вьюпорта.
// Исходящие сообщения добавляются только локально (эндпоинта отправки
// нет), со статусом SyncPending до появления настоящего вызова
type ChatView struct {
	mu            sync.Mutex
	breakpoint    int
	viewportWidth int
	selectedID    string
	conversations []models.Conversation
	messages      map[string][]models.Message
	compose       string
}

func NewChatView() *ChatView {
	return &ChatView{
		breakpoint:    config.AppConfig.UI.MobileBreakpoint,
		viewportWidth: config.AppConfig.UI.MobileBreakpoint,
		messages:      make(map[string][]models.Message),
	}
}

// SetConversations заполняет список диалогов (загружается один раз на
// открытие страницы)
func (v *ChatView) SetConversations(convs []models.Conversation) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.conversations = append([]models.Conversation(nil), convs...)
}

func (v *ChatView) Conversations() []models.Conversation {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Conversation(nil), v.conversations...)
}

// SetMessages заполняет буфер сообщений диалога
func (v *ChatView) SetMessages(convID string, msgs []models.Message) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages[convID] = append([]models.Message(nil), msgs...)
}

func (v *ChatView) Messages(convID string) []models.Message {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Message(nil), v.messages[convID]...)
}

// SelectConversation выбирает диалог (повторный выбор того же id допустим)
// и локально сбрасывает его счетчик непрочитанного
func (v *ChatView) SelectConversation(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selectedID = id

	for i := range v.conversations {
		if v.conversations[i].ID == id {
			v.conversations[i].UnreadCount = 0
			v.conversations[i].LastMessage.Read = true
		}
	}
	msgs := v.messages[id]
	for i := range msgs {
		msgs[i].Read = true
	}
}

// Deselect - кнопка "назад" на мобильной раскладке. В двухпанельном
// режиме обе панели и так видны, переход недостижим
func (v *ChatView) Deselect() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.layoutLocked() == LayoutTwoPane {
		return
	}
	v.selectedID = ""
}

// SelectedID возвращает id выбранного диалога и признак выбора
func (v *ChatView) SelectedID() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selectedID, v.selectedID != ""
}

func (v *ChatView) SetCompose(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.compose = text
}

func (v *ChatView) Compose() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.compose
}

// SendMessage добавляет исходящее сообщение в буфер выбранного диалога и
// чистит поле ввода. Пустой (после trim) текст - no-op. Вызова сети нет:
// сообщение не переживет перезагрузку и не дойдет до собеседника
func (v *ChatView) SendMessage(text string) *models.Message {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selectedID == "" {
		return nil
	}

	msg := models.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: time.Now(),
		Sender:    models.SenderMe,
		Read:      false,
		Sync:      models.SyncPending,
	}
	v.messages[v.selectedID] = append(v.messages[v.selectedID], msg)
	v.compose = ""

	for i := range v.conversations {
		if v.conversations[i].ID == v.selectedID {
			v.conversations[i].LastMessage = models.MessagePreview{
				Text:      text,
				Timestamp: msg.Timestamp,
				Read:      false,
				FromMe:    true,
			}
		}
	}
	return &msg
}

// SetViewportWidth пересчитывает раскладку. Переход через брейкпоинт
// не сбрасывает выбранный диалог, меняется только видимость панелей
func (v *ChatView) SetViewportWidth(px int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.viewportWidth = px
}

func (v *ChatView) Layout() LayoutMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.layoutLocked()
}

func (v *ChatView) layoutLocked() LayoutMode {
	if v.viewportWidth < v.breakpoint {
		return LayoutSinglePane
	}
	return LayoutTwoPane
}

// Panes возвращает видимость панелей: на узком экране либо список, либо
// открытый диалог, на широком - обе панели
func (v *ChatView) Panes() PaneState {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.layoutLocked() == LayoutTwoPane {
		return PaneState{ShowList: true, ShowDetail: true}
	}
	if v.selectedID != "" {
		return PaneState{ShowDetail: true}
	}
	return PaneState{ShowList: true}
}

// UnreadTotal - суммарный счетчик для бейджа в навигации
func (v *ChatView) UnreadTotal() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	total := 0
	for _, conv := range v.conversations {
		total += conv.UnreadCount
	}
	return total
}
