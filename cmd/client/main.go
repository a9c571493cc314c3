package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"socialclient/api"
	"socialclient/config"
	"socialclient/db"
	"socialclient/models"
	"socialclient/services"
)

func main() {
	var configPath, email, phone, otp string
	var width int
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.StringVar(&email, "email", "", "Email to log in with")
	flag.StringVar(&phone, "phone", "", "Phone to log in with")
	flag.StringVar(&otp, "otp", "", "One-time code for login")
	flag.IntVar(&width, "width", 1024, "Simulated viewport width in px")
	flag.Parse()

	err := config.LoadConfig(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := db.ConnectDB(); err != nil {
		panic("Failed to open local storage: " + err.Error())
	}

	store := services.NewSessionStore(db.ORM)
	ctx := context.Background()

	if !store.IsAuthenticated() && otp != "" {
		err := store.Login(ctx, api.LoginRequest{Email: email, Phone: phone, OTP: otp})
		if err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		log.Println("Logged in as", store.UserID())
	}

	router := services.NewRouter(store)
	nav := router.Navigate(services.RouteHome)
	if nav.Redirected {
		log.Println("Not authenticated, redirected to", nav.Path)
		return
	}

	queries := services.NewQueries(store)

	feed := services.NewFeedView(queries)
	if err := feed.Load(ctx); err != nil {
		log.Printf("Failed to load feed: %v", err)
	} else {
		for _, post := range feed.Posts() {
			log.Printf("[%s] %s: %s (%d likes, %d comments)",
				post.CreatedAt.Format("15:04"), post.Author.Username, post.Content,
				post.LikeCount, post.CommentCount)
		}
	}

	chat := services.NewChatView()
	chat.SetViewportWidth(width)

	convs, err := queries.Conversations(ctx)
	if err != nil {
		if errors.Is(err, services.ErrQueryDisabled) {
			log.Println("Conversations query disabled: user is not known")
			return
		}
		log.Fatalf("Failed to load conversations: %v", err)
	}
	chat.SetConversations(convs)

	// Эндпоинта истории сообщений у API нет - наполняем буферы
	// демонстрационными данными, как это делала страница сообщений
	for _, conv := range convs {
		chat.SetMessages(conv.ID, fakeHistory(conv))
	}

	if len(convs) > 0 {
		chat.SelectConversation(convs[0].ID)
		log.Printf("Layout: %s, panes: %+v", chat.Layout(), chat.Panes())
		for _, msg := range chat.Messages(convs[0].ID) {
			log.Printf("  %s [%s]: %s", msg.Timestamp.Format("15:04"), msg.Sender, msg.Text)
		}
	}
}

// fakeHistory генерирует правдоподобную историю диалога
func fakeHistory(conv models.Conversation) []models.Message {
	count := gofakeit.Number(3, 8)
	msgs := make([]models.Message, 0, count)
	ts := time.Now().Add(-time.Duration(count) * 10 * time.Minute)
	for i := 0; i < count; i++ {
		sender := models.SenderOther
		if gofakeit.Bool() {
			sender = models.SenderMe
		}
		msgs = append(msgs, models.Message{
			ID:        gofakeit.UUID(),
			Text:      gofakeit.Sentence(gofakeit.Number(3, 10)),
			Timestamp: ts,
			Sender:    sender,
			Read:      true,
			Sync:      models.SyncSynced,
		})
		ts = ts.Add(10 * time.Minute)
	}
	msgs = append(msgs, models.Message{
		ID:        gofakeit.UUID(),
		Text:      conv.LastMessage.Text,
		Timestamp: conv.LastMessage.Timestamp,
		Sender:    models.SenderOther,
		Read:      conv.LastMessage.Read,
		Sync:      models.SyncSynced,
	})
	return msgs
}
