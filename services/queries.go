package services

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"socialclient/api"
	"socialclient/models"
)

// ErrQueryDisabled возвращается, когда запросу не хватает параметров
// (например, список диалогов до того, как известен id пользователя)
var ErrQueryDisabled = errors.New("query is disabled")

// Ключи кеша: имя ресурса плюс параметры
const (
	KeyPosts   = "posts"
	KeyMyPosts = "myPosts"
)

func KeyPost(id string) string              { return "post:" + id }
func KeyComments(postID string) string      { return "comments:" + postID }
func KeyConversations(userID string) string { return "conversations:" + userID }

type cacheEntry struct {
	gen   int64
	data  interface{}
	err   error
	valid bool
}

// Queries - прослойка кеша между страницами и api-клиентом.
// Конкурентные запросы одного ключа делят один сетевой вызов, успешная
// мутация инвалидирует зависимые ключи. Ошибка запроса кешируется до
// явного Retry - автоматических повторов нет
type Queries struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	group   singleflight.Group
	session *SessionStore
}

func NewQueries(session *SessionStore) *Queries {
	return &Queries{
		entries: make(map[string]*cacheEntry),
		session: session,
	}
}

// fetch возвращает кешированное значение ключа или выполняет fn.
// Полет singleflight привязан к поколению ключа: запрос, пришедший после
// инвалидации, не присоединяется к висящему старому вызову, а начинает
// новый. Ответ устаревшего поколения отдается вызывающему, но в кеш
// не попадает
func (q *Queries) fetch(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	q.mu.Lock()
	entry, ok := q.entries[key]
	if !ok {
		entry = &cacheEntry{}
		q.entries[key] = entry
	}
	if entry.valid {
		data, err := entry.data, entry.err
		q.mu.Unlock()
		return data, err
	}
	gen := entry.gen
	q.mu.Unlock()

	flightKey := key + ":" + strconv.FormatInt(gen, 10)
	data, err, _ := q.group.Do(flightKey, func() (interface{}, error) {
		return fn(ctx)
	})

	q.mu.Lock()
	defer q.mu.Unlock()
	if entry.gen == gen {
		entry.data = data
		entry.err = err
		entry.valid = true
	}
	return data, err
}

// Invalidate сбрасывает ключи: следующий запрос пойдет в сеть заново
func (q *Queries) Invalidate(keys ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, key := range keys {
		entry, ok := q.entries[key]
		if !ok {
			entry = &cacheEntry{}
			q.entries[key] = entry
		}
		entry.gen++
		entry.valid = false
		entry.data = nil
		entry.err = nil
	}
}

// Retry сбрасывает закешированную ошибку ключа (ручной повтор со страницы)
func (q *Queries) Retry(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if entry, ok := q.entries[key]; ok && entry.err != nil {
		entry.gen++
		entry.valid = false
		entry.data = nil
		entry.err = nil
	}
}

func (q *Queries) Posts(ctx context.Context) ([]models.Post, error) {
	data, err := q.fetch(ctx, KeyPosts, func(ctx context.Context) (interface{}, error) {
		return q.session.Client().Posts(ctx, q.session.UserID())
	})
	if err != nil {
		return nil, err
	}
	return data.([]models.Post), nil
}

func (q *Queries) MyPosts(ctx context.Context) ([]models.Post, error) {
	data, err := q.fetch(ctx, KeyMyPosts, func(ctx context.Context) (interface{}, error) {
		return q.session.Client().MyPosts(ctx, q.session.UserID())
	})
	if err != nil {
		return nil, err
	}
	return data.([]models.Post), nil
}

func (q *Queries) Post(ctx context.Context, id string) (*models.Post, error) {
	if id == "" {
		return nil, ErrQueryDisabled
	}
	data, err := q.fetch(ctx, KeyPost(id), func(ctx context.Context) (interface{}, error) {
		return q.session.Client().Post(ctx, id, q.session.UserID())
	})
	if err != nil {
		return nil, err
	}
	return data.(*models.Post), nil
}

func (q *Queries) Comments(ctx context.Context, postID string) ([]models.Comment, error) {
	if postID == "" {
		return nil, ErrQueryDisabled
	}
	data, err := q.fetch(ctx, KeyComments(postID), func(ctx context.Context) (interface{}, error) {
		return q.session.Client().Comments(ctx, postID)
	})
	if err != nil {
		return nil, err
	}
	return data.([]models.Comment), nil
}

// Conversations выключен, пока пользователь не известен
func (q *Queries) Conversations(ctx context.Context) ([]models.Conversation, error) {
	userID := q.session.UserID()
	if userID == "" {
		return nil, ErrQueryDisabled
	}
	data, err := q.fetch(ctx, KeyConversations(userID), func(ctx context.Context) (interface{}, error) {
		return q.session.Client().Conversations(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return data.([]models.Conversation), nil
}

// CreatePost создает пост и инвалидирует ленту и посты профиля
func (q *Queries) CreatePost(ctx context.Context, in api.CreatePostInput) (*models.Post, error) {
	post, err := q.session.Client().CreatePost(ctx, in, q.session.UserID())
	if err != nil {
		return nil, err
	}
	q.Invalidate(KeyPosts, KeyMyPosts)
	return post, nil
}

func (q *Queries) DeletePost(ctx context.Context, id string) error {
	if err := q.session.Client().DeletePost(ctx, id); err != nil {
		return err
	}
	q.Invalidate(KeyPosts, KeyMyPosts, KeyPost(id))
	return nil
}

// CreateComment добавляет комментарий и инвалидирует список комментариев
// поста вместе с самим постом (у него меняется счетчик)
func (q *Queries) CreateComment(ctx context.Context, postID, content string) (*models.Comment, error) {
	comment, err := q.session.Client().CreateComment(ctx, postID, content)
	if err != nil {
		return nil, err
	}
	q.Invalidate(KeyComments(postID), KeyPost(postID))
	return comment, nil
}
