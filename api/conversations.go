package api

import (
	"context"
	"fmt"

	"socialclient/models"
)

// Conversations возвращает список диалогов пользователя.
// Список загружается один раз на открытие страницы, push-канала нет
func (c *Client) Conversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	if userID == "" {
		return nil, fmt.Errorf("conversations: %w: empty user id", ErrValidation)
	}
	var raw []conversationSchema
	if err := c.getJSON(ctx, "conversations", "/conversations/"+userID, &raw); err != nil {
		return nil, err
	}
	convs := make([]models.Conversation, 0, len(raw))
	for _, s := range raw {
		convs = append(convs, toConversation(s))
	}
	return convs, nil
}
