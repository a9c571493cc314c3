package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newBackend(t *testing.T, setup func(r *gin.Engine)) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setup(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	server := newBackend(t, func(r *gin.Engine) {
		r.GET("/posts", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			c.JSON(http.StatusOK, []gin.H{})
		})
	})

	client := NewClient(server.URL, 5*time.Second, staticTokens("secret-token"))
	_, err := client.Posts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestNoBearerHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := newBackend(t, func(r *gin.Engine) {
		r.GET("/posts", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			c.JSON(http.StatusOK, []gin.H{})
		})
	})

	client := NewClient(server.URL, 5*time.Second, staticTokens(""))
	_, err := client.Posts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestLoginErrorMapping(t *testing.T) {
	server := newBackend(t, func(r *gin.Engine) {
		r.POST("/student/login", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		})
	})

	client := NewClient(server.URL, 5*time.Second, nil)
	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.io", OTP: "1234"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, IsAuthError(err))
}

func TestVerifyOTPErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		want    error
	}{
		{"invalid code", http.StatusUnauthorized, "Invalid code", ErrInvalidCode},
		{"expired code", http.StatusUnauthorized, "Code expired", ErrExpiredCode},
		{"bad payload", http.StatusBadRequest, "Invalid request", ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newBackend(t, func(r *gin.Engine) {
				r.POST("/student/verify-otp", func(c *gin.Context) {
					c.JSON(tt.status, gin.H{"error": tt.message})
				})
			})

			client := NewClient(server.URL, 5*time.Second, nil)
			_, err := client.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@b.io", OTP: "0000"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterConflict(t *testing.T) {
	server := newBackend(t, func(r *gin.Engine) {
		r.POST("/student/register", func(c *gin.Context) {
			c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
		})
	})

	client := NewClient(server.URL, 5*time.Second, nil)
	_, err := client.Register(context.Background(), RegisterRequest{Name: "John", Email: "a@b.io"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestNotFoundMapping(t *testing.T) {
	server := newBackend(t, func(r *gin.Engine) {
		r.GET("/posts/:id", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		})
	})

	client := NewClient(server.URL, 5*time.Second, nil)
	_, err := client.Post(context.Background(), "missing", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNetworkError(t *testing.T) {
	// Сервер закрыт до запроса - транспортная ошибка
	server := newBackend(t, func(r *gin.Engine) {})
	server.Close()

	client := NewClient(server.URL, time.Second, nil)
	_, err := client.Posts(context.Background(), "")
	assert.True(t, IsNetworkError(err))
	assert.False(t, IsAuthError(err))
}

func TestPostSchemaTransform(t *testing.T) {
	server := newBackend(t, func(r *gin.Engine) {
		r.GET("/posts", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{{
				"_id": "p1",
				"userId": gin.H{
					"_id":   "u1",
					"name":  "John Doe",
					"email": "john.doe@example.com",
				},
				"content":  "hello",
				"likes":    []string{"u2", "u3"},
				"comments": []string{"c1"},
				"shares":   4,
				"savedBy":  []string{"u3"},
			}})
		})
	})

	client := NewClient(server.URL, 5*time.Second, nil)
	posts, err := client.Posts(context.Background(), "u3")
	require.NoError(t, err)
	require.Len(t, posts, 1)

	post := posts[0]
	assert.Equal(t, "p1", post.ID)
	assert.Equal(t, "john.doe", post.Author.Username)
	assert.Equal(t, 2, post.LikeCount)
	assert.Equal(t, 1, post.CommentCount)
	assert.Equal(t, 4, post.ShareCount)
	assert.True(t, post.LikedByMe)
	assert.True(t, post.SavedByMe)
}

func TestCreatePostMultipart(t *testing.T) {
	var gotContent, gotFilename string
	var gotFile []byte
	server := newBackend(t, func(r *gin.Engine) {
		r.POST("/posts", func(c *gin.Context) {
			gotContent = c.PostForm("content")
			file, err := c.FormFile("image")
			require.NoError(t, err)
			gotFilename = file.Filename
			f, err := file.Open()
			require.NoError(t, err)
			defer f.Close()
			buf := make([]byte, file.Size)
			_, _ = f.Read(buf)
			gotFile = buf
			c.JSON(http.StatusCreated, gin.H{"_id": "p9", "content": gotContent})
		})
	})

	client := NewClient(server.URL, 5*time.Second, nil)
	post, err := client.CreatePost(context.Background(), CreatePostInput{
		Content:       "with picture",
		ImageFilename: "cat.png",
		ImageData:     []byte{0x89, 0x50, 0x4e, 0x47},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "p9", post.ID)
	assert.Equal(t, "with picture", gotContent)
	assert.Equal(t, "cat.png", gotFilename)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, gotFile)
}

func TestCreatePostJSONWithoutImage(t *testing.T) {
	var gotContentType string
	server := newBackend(t, func(r *gin.Engine) {
		r.POST("/posts", func(c *gin.Context) {
			gotContentType = c.ContentType()
			var req struct {
				Content string `json:"content"`
			}
			require.NoError(t, c.ShouldBindJSON(&req))
			c.JSON(http.StatusCreated, gin.H{"_id": "p2", "content": req.Content})
		})
	})

	client := NewClient(server.URL, 5*time.Second, nil)
	post, err := client.CreatePost(context.Background(), CreatePostInput{Content: "text only"}, "")
	require.NoError(t, err)
	assert.Equal(t, "p2", post.ID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDeletePostPath(t *testing.T) {
	var gotPath string
	server := newBackend(t, func(r *gin.Engine) {
		r.DELETE("/posts/deletePost/:id", func(c *gin.Context) {
			gotPath = c.Request.URL.Path
			c.JSON(http.StatusOK, gin.H{"message": "deleted"})
		})
	})

	client := NewClient(server.URL, 5*time.Second, nil)
	require.NoError(t, client.DeletePost(context.Background(), "p7"))
	assert.Equal(t, "/posts/deletePost/p7", gotPath)
}

func TestUsernameFromEmail(t *testing.T) {
	assert.Equal(t, "john", usernameFromEmail("john@example.com"))
	assert.Equal(t, "no-at-sign", usernameFromEmail("no-at-sign"))
	assert.Equal(t, "a.b", usernameFromEmail("a.b@c.d"))
}
