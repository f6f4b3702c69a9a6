package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

type courseRouterFixture struct {
	router      *gin.Engine
	courseRepo  *mocks.MockCourseRepository
	jwtProvider *security.JWTProvider
}

func setupCourseRouter(t *testing.T) *courseRouterFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	courseRepo := mocks.NewMockCourseRepository()
	jwtProvider := security.NewJWTProvider(&config.JWTConfig{
		Secret:               "test-secret-key-for-testing-purposes-only",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "test",
	})
	securityService := security.NewSecurityService(jwtProvider)
	authMiddleware := middleware.NewAuthMiddleware(jwtProvider, securityService)

	controller := NewCourseController(impl.NewCourseService(courseRepo), securityService, authMiddleware)

	router := gin.New()
	api := router.Group("/api/v1")
	controller.RegisterRoutes(api)
	return &courseRouterFixture{router: router, courseRepo: courseRepo, jwtProvider: jwtProvider}
}

func (f *courseRouterFixture) tokenFor(t *testing.T, userID string, role entity.UserRole) string {
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

func (f *courseRouterFixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bodyReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCourseController_Create_RoleGate(t *testing.T) {
	f := setupCourseRouter(t)

	body := `{"title":"CSS Basics","description":"intro","category":"CSS","level":"beginner","price":19.99}`

	rec := f.do(t, http.MethodPost, "/api/v1/courses", body, f.tokenFor(t, "user-1", entity.RoleUser))
	if rec.Code != http.StatusForbidden {
		t.Errorf("user create status = %d, want 403", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/api/v1/courses", body, f.tokenFor(t, "instructor-1", entity.RoleInstructor))
	if rec.Code != http.StatusCreated {
		t.Fatalf("instructor create status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope response.ApiResponse[response.CourseResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Data.Slug != "css-basics" {
		t.Errorf("Slug = %v, want css-basics", envelope.Data.Slug)
	}
}

func TestCourseController_EnrollAndReview(t *testing.T) {
	f := setupCourseRouter(t)

	course := f.courseRepo.AddCourse(&entity.Course{
		Title:        "Enrollable",
		Slug:         "enrollable",
		InstructorID: "instructor-1",
		Category:     entity.CourseJavaScript,
		Level:        entity.LevelBeginner,
		IsPublished:  true,
	})
	studentToken := f.tokenFor(t, "student-1", entity.RoleUser)

	// Reviewing before enrolling is forbidden
	rec := f.do(t, http.MethodPost, "/api/v1/courses/"+course.ID+"/reviews", `{"rating":5}`, studentToken)
	if rec.Code != http.StatusForbidden {
		t.Errorf("pre-enrollment review status = %d, want 403", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/api/v1/courses/"+course.ID+"/enroll", "", studentToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("enroll status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Double enrollment conflicts
	rec = f.do(t, http.MethodPost, "/api/v1/courses/"+course.ID+"/enroll", "", studentToken)
	if rec.Code != http.StatusConflict {
		t.Errorf("second enroll status = %d, want 409", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/api/v1/courses/"+course.ID+"/reviews", `{"rating":4,"text":"solid"}`, studentToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("review status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope response.ApiResponse[response.CourseResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Data.Rating != 4 {
		t.Errorf("Rating = %v, want 4", envelope.Data.Rating)
	}

	// One review per student
	rec = f.do(t, http.MethodPost, "/api/v1/courses/"+course.ID+"/reviews", `{"rating":5}`, studentToken)
	if rec.Code != http.StatusConflict {
		t.Errorf("second review status = %d, want 409", rec.Code)
	}
}

func TestCourseController_List_MaxPrice(t *testing.T) {
	f := setupCourseRouter(t)

	f.courseRepo.AddCourse(&entity.Course{
		Slug: "affordable", Category: entity.CourseCSS, Level: entity.LevelBeginner,
		Price: 49.99, IsPublished: true,
	})
	f.courseRepo.AddCourse(&entity.Course{
		Slug: "premium", Category: entity.CourseCSS, Level: entity.LevelBeginner,
		Price: 199.99, IsPublished: true,
	})

	rec := f.do(t, http.MethodGet, "/api/v1/courses?max_price=100", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}

	var envelope response.ApiResponse[response.PagedResponse[response.CourseResponse]]
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].Slug != "affordable" {
		t.Errorf("Items = %+v, want only affordable", envelope.Data.Items)
	}
}
