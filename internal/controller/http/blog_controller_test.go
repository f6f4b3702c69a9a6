package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devtutor/devtutor-go/internal/config"
	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/service/impl"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/middleware"
	"github.com/devtutor/devtutor-go/internal/security"
	"github.com/devtutor/devtutor-go/internal/testutil/mocks"
)

type blogRouterFixture struct {
	router      *gin.Engine
	blogRepo    *mocks.MockBlogRepository
	jwtProvider *security.JWTProvider
}

func setupBlogRouter(t *testing.T) *blogRouterFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	blogRepo := mocks.NewMockBlogRepository()
	jwtProvider := security.NewJWTProvider(&config.JWTConfig{
		Secret:               "test-secret-key-for-testing-purposes-only",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "test",
	})
	securityService := security.NewSecurityService(jwtProvider)
	authMiddleware := middleware.NewAuthMiddleware(jwtProvider, securityService)

	controller := NewBlogController(impl.NewBlogService(blogRepo), securityService, authMiddleware)

	router := gin.New()
	api := router.Group("/api/v1")
	controller.RegisterRoutes(api)
	return &blogRouterFixture{router: router, blogRepo: blogRepo, jwtProvider: jwtProvider}
}

func (f *blogRouterFixture) tokenFor(t *testing.T, userID string, role entity.UserRole) string {
	t.Helper()
	token, err := f.jwtProvider.GenerateAccessToken(&entity.User{
		ID:       userID,
		Username: userID,
		Email:    userID + "@example.com",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	return token
}

func bodyReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestBlogController_Create_RoleGate(t *testing.T) {
	f := setupBlogRouter(t)

	body := `{"title":"Gated Post","content":"body","category":"Programming"}`

	// Plain users cannot author
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", bodyReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.tokenFor(t, "user-1", entity.RoleUser))
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("user create status = %d, want 403", rec.Code)
	}

	// Instructors can
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/blogs", bodyReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.tokenFor(t, "instructor-1", entity.RoleInstructor))
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("instructor create status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope response.ApiResponse[response.BlogResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Data.Slug != "gated-post" {
		t.Errorf("Slug = %v, want gated-post", envelope.Data.Slug)
	}
	if envelope.Data.AuthorID != "instructor-1" {
		t.Errorf("AuthorID = %v, want instructor-1", envelope.Data.AuthorID)
	}
}

func TestBlogController_PublicList(t *testing.T) {
	f := setupBlogRouter(t)

	f.blogRepo.AddBlog(&entity.Blog{
		Slug:     "open",
		Category: entity.CategoryProgramming,
		Status:   entity.BlogStatusPublished,
	})

	// No token needed for the public listing
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs", nil)
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}

	var envelope response.ApiResponse[response.PagedResponse[response.BlogResponse]]
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(envelope.Data.Items) != 1 {
		t.Errorf("Items = %d, want 1", len(envelope.Data.Items))
	}
}

func TestBlogController_ToggleLike(t *testing.T) {
	f := setupBlogRouter(t)

	blog := f.blogRepo.AddBlog(&entity.Blog{
		Slug:   "likeable",
		Status: entity.BlogStatusPublished,
	})
	token := f.tokenFor(t, "user-1", entity.RoleUser)

	like := func() response.LikeResponse {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs/"+blog.ID+"/like", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		f.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("like status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var envelope response.ApiResponse[response.LikeResponse]
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return envelope.Data
	}

	if resp := like(); !resp.Liked || resp.LikeCount != 1 {
		t.Errorf("first toggle = %+v, want liked with count 1", resp)
	}
	if resp := like(); resp.Liked || resp.LikeCount != 0 {
		t.Errorf("second toggle = %+v, want unliked with count 0", resp)
	}
}

func TestBlogController_GetBySlug_NotFound(t *testing.T) {
	f := setupBlogRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/nope", nil)
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
