package services

import (
	"context"
	"sync"

	"socialclient/api"
	"socialclient/models"
)

// FeedView - состояние домашней ленты. Лайки и сохранения переключаются
// оптимистично, без подтверждающего вызова к серверу: флип остается в
// SyncPending, пока у API не появится настоящий эндпоинт
type FeedView struct {
	mu      sync.Mutex
	queries *Queries
	posts   []models.Post
}

func NewFeedView(queries *Queries) *FeedView {
	return &FeedView{queries: queries}
}

// Load загружает ленту через кеширующий слой
func (v *FeedView) Load(ctx context.Context) error {
	posts, err := v.queries.Posts(ctx)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.posts = append([]models.Post(nil), posts...)
	v.mu.Unlock()
	return nil
}

// Refresh сбрасывает кеш ленты и загружает ее заново (ручной повтор)
func (v *FeedView) Refresh(ctx context.Context) error {
	v.queries.Invalidate(KeyPosts)
	return v.Load(ctx)
}

func (v *FeedView) Posts() []models.Post {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Post(nil), v.posts...)
}

// ToggleLike локально переключает лайк и правит счетчик
func (v *FeedView) ToggleLike(postID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.posts {
		if v.posts[i].ID != postID {
			continue
		}
		if v.posts[i].LikedByMe {
			v.posts[i].LikedByMe = false
			v.posts[i].LikeCount--
		} else {
			v.posts[i].LikedByMe = true
			v.posts[i].LikeCount++
		}
		v.posts[i].LikeSync = models.SyncPending
	}
}

// ToggleSave локально переключает сохранение поста
func (v *FeedView) ToggleSave(postID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.posts {
		if v.posts[i].ID != postID {
			continue
		}
		v.posts[i].SavedByMe = !v.posts[i].SavedByMe
		v.posts[i].SaveSync = models.SyncPending
	}
}

// CreatePost создает пост через мутацию и перечитывает инвалидированную ленту
func (v *FeedView) CreatePost(ctx context.Context, in api.CreatePostInput) (*models.Post, error) {
	post, err := v.queries.CreatePost(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := v.Load(ctx); err != nil {
		return post, err
	}
	return post, nil
}

// DeletePost удаляет пост и перечитывает ленту
func (v *FeedView) DeletePost(ctx context.Context, id string) error {
	if err := v.queries.DeletePost(ctx, id); err != nil {
		return err
	}
	return v.Load(ctx)
}
