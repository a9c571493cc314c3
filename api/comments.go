package api

import (
	"context"
	"fmt"

	"socialclient/models"
)

func (c *Client) Comments(ctx context.Context, postID string) ([]models.Comment, error) {
	if postID == "" {
		return nil, fmt.Errorf("comments: %w: empty post id", ErrValidation)
	}
	var raw []commentSchema
	if err := c.getJSON(ctx, "comments", "/comment/"+postID, &raw); err != nil {
		return nil, err
	}
	comments := make([]models.Comment, 0, len(raw))
	for _, s := range raw {
		comments = append(comments, toComment(s))
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, postID, content string) (*models.Comment, error) {
	if postID == "" {
		return nil, fmt.Errorf("create-comment: %w: empty post id", ErrValidation)
	}
	payload := struct {
		Content string `json:"content"`
	}{Content: content}

	var raw commentSchema
	if err := c.postJSON(ctx, "create-comment", "/comment/"+postID, payload, &raw); err != nil {
		return nil, err
	}
	comment := toComment(raw)
	return &comment, nil
}
