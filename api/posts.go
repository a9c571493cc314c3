package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"socialclient/models"
)

// CreatePostInput - данные нового поста. Image с именем файла и содержимым
// приходит от виджета загрузки, его внутренности нас не касаются
type CreatePostInput struct {
	Content       string
	ImageFilename string
	ImageData     []byte
}

// Posts возвращает ленту. viewerID нужен для вычисления флагов
// LikedByMe/SavedByMe из сырых списков лайков
func (c *Client) Posts(ctx context.Context, viewerID string) ([]models.Post, error) {
	var raw []postSchema
	if err := c.getJSON(ctx, "posts", "/posts", &raw); err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(raw))
	for _, s := range raw {
		posts = append(posts, toPost(s, viewerID))
	}
	return posts, nil
}

// MyPosts возвращает посты текущего пользователя (страница профиля)
func (c *Client) MyPosts(ctx context.Context, viewerID string) ([]models.Post, error) {
	var raw []postSchema
	if err := c.getJSON(ctx, "my-posts", "/posts/getPostbyMe", &raw); err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(raw))
	for _, s := range raw {
		posts = append(posts, toPost(s, viewerID))
	}
	return posts, nil
}

func (c *Client) Post(ctx context.Context, id, viewerID string) (*models.Post, error) {
	var raw postSchema
	if err := c.getJSON(ctx, "post", "/posts/"+id, &raw); err != nil {
		return nil, err
	}
	post := toPost(raw, viewerID)
	return &post, nil
}

// CreatePost создает пост. С картинкой - multipart, без - обычный JSON
func (c *Client) CreatePost(ctx context.Context, in CreatePostInput, viewerID string) (*models.Post, error) {
	var raw postSchema

	if len(in.ImageData) == 0 {
		payload := struct {
			Content string `json:"content"`
		}{Content: in.Content}
		if err := c.postJSON(ctx, "create-post", "/posts", payload, &raw); err != nil {
			return nil, err
		}
		post := toPost(raw, viewerID)
		return &post, nil
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("content", in.Content); err != nil {
		return nil, err
	}
	part, err := writer.CreateFormFile("image", in.ImageFilename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(in.ImageData); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	err = c.do(ctx, "create-post", http.MethodPost, "/posts", &buf, writer.FormDataContentType(), &raw)
	if err != nil {
		return nil, err
	}
	post := toPost(raw, viewerID)
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete-post: %w: empty post id", ErrValidation)
	}
	return c.do(ctx, "delete-post", http.MethodDelete, "/posts/deletePost/"+id, nil, "", nil)
}
