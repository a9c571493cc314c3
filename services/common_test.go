package services

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"socialclient/api"
	"socialclient/config"
	"socialclient/db"
)

// setupTestConfig выставляет конфигурацию без чтения yaml-файла
func setupTestConfig(baseURL string) {
	config.AppConfig = config.ConfigSchema{}
	config.AppConfig.API.BaseURL = baseURL
	config.AppConfig.API.TimeoutSeconds = 5
	config.AppConfig.Auth.OTPLength = 4
	config.AppConfig.Auth.ResendCooldownSeconds = 3
	config.AppConfig.UI.MobileBreakpoint = 768
}

func newBackend(t *testing.T, setup func(r *gin.Engine)) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setup(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func openTestStorage(t *testing.T) *gorm.DB {
	database, err := db.Open(filepath.Join(t.TempDir(), "client.db"))
	if err != nil {
		t.Fatalf("Failed to open test storage: %v", err)
	}
	return database
}

// newTestStore собирает SessionStore поверх временного хранилища и
// тестового бэкенда
func newTestStore(t *testing.T, database *gorm.DB, backendURL string) *SessionStore {
	setupTestConfig(backendURL)
	store := NewSessionStore(database)
	store.SetClient(api.NewClient(backendURL, 5*time.Second, store))
	return store
}
