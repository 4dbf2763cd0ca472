package test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"blogCPT/internal/config"
	handlers "blogCPT/internal/handler"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:     "test-secret-key",
		ServerPort:       8080,
		TokenDuration:    24 * time.Hour,
		MaxUploadSize:    10 * 1024 * 1024,
		MaxThumbnailSize: 2000000,
		MaxAvatarSize:    500000,
	}
}

func newTestHandlers() (*handlers.Handlers, *MockAuthService, *MockUserService, *MockPostService, *MockUserRepository, *MockPostRepository) {
	authService := new(MockAuthService)
	userService := new(MockUserService)
	postService := new(MockPostService)
	userRepo := new(MockUserRepository)
	postRepo := new(MockPostRepository)

	h := &handlers.Handlers{
		AuthService: authService,
		UserService: userService,
		PostService: postService,
		UserRepo:    userRepo,
		PostRepo:    postRepo,
		Storage:     stubStorage{},
		Cfg:         testConfig(),
		Validate:    validator.New(),
	}

	return h, authService, userService, postService, userRepo, postRepo
}

// withCaller adds the authenticated caller identity to the request context
func withCaller(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), "userID", userID)
	ctx = context.WithValue(ctx, "name", "Test User")
	return r.WithContext(ctx)
}

// multipartBody builds a multipart form with text fields and an optional PNG file
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		err := writer.WriteField(key, value)
		assert.NoError(t, err)
	}

	if fileField != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+fileName+`"`)
		header.Set("Content-Type", "image/png")

		part, err := writer.CreatePart(header)
		assert.NoError(t, err)

		_, err = part.Write(fileContent)
		assert.NoError(t, err)
	}

	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}
