package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"socialclient/api"
	"socialclient/models"
)

// SessionStore владеет токеном и личностью текущего пользователя.
// Токен живет в единственной строке локального хранилища, туда пишет
// только этот компонент. Инвариант: IsAuthenticated == (token != "")
type SessionStore struct {
	mu      sync.Mutex
	db      *gorm.DB
	client  *api.Client
	token   string
	user    *models.User
	loading bool
}

// NewSessionStore читает сохраненный токен синхронно, до того как будет
// создан api-клиент. Первый авторизованный запрос гарантированно уходит
// уже с токеном, если он был сохранен
func NewSessionStore(database *gorm.DB) *SessionStore {
	s := &SessionStore{db: database}
	s.load()
	s.client = api.NewClientFromConfig(s)
	return s
}

// SetClient подменяет api-клиент (нужно тестам для работы с httptest-сервером)
func (s *SessionStore) SetClient(c *api.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = c
}

func (s *SessionStore) Client() *api.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// Token реализует api.TokenSource
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UserID возвращает id текущего пользователя или пустую строку
func (s *SessionStore) UserID() string {
	if u := s.User(); u != nil {
		return u.ID
	}
	return ""
}

// Register создает неподтвержденный аккаунт. Состояние сессии не меняет:
// токен на этом шаге еще не выдан
func (s *SessionStore) Register(ctx context.Context, req api.RegisterRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	_, err := s.Client().Register(ctx, req)
	return err
}

// VerifyOTP подтверждает одноразовый код. Сама по себе не аутентифицирует -
// логин отдельный шаг
func (s *SessionStore) VerifyOTP(ctx context.Context, req api.VerifyOTPRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	_, err := s.Client().VerifyOTP(ctx, req)
	return err
}

// Login обменивает учетные данные на токен. Токен сначала сохраняется в
// локальное хранилище и только потом попадает в память: перезагрузка сразу
// после логина видит согласованное состояние
func (s *SessionStore) Login(ctx context.Context, req api.LoginRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.Client().Login(ctx, req)
	if err != nil {
		return err
	}

	if err := s.persist(resp.Token, &resp.User); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = resp.Token
	user := resp.User
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Logout чистит хранилище и память. Идемпотентен и всегда успешен:
// ошибка записи в хранилище логируется, но сессию не оставляет живой
func (s *SessionStore) Logout() {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.persist("", nil); err != nil {
		log.Println("Failed to clear session record:", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

func (s *SessionStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// load читает строку сессии из хранилища при старте
func (s *SessionStore) load() {
	if s.db == nil {
		return
	}
	var record models.SessionRecord
	err := s.db.First(&record, models.SessionRecordID).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Println("Failed to load session record:", err)
		}
		return
	}
	s.token = record.Token
	if record.UserJSON != "" {
		var user models.User
		if err := json.Unmarshal([]byte(record.UserJSON), &user); err == nil {
			s.user = &user
		}
	}
}

// persist пишет строку сессии в хранилище. Пустой токен означает выход
func (s *SessionStore) persist(token string, user *models.User) error {
	if s.db == nil {
		return nil
	}
	record := models.SessionRecord{
		ID:        models.SessionRecordID,
		Token:     token,
		UpdatedAt: time.Now(),
	}
	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		record.UserJSON = string(data)
	}
	return s.db.Save(&record).Error
}
