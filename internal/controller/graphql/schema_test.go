package graphql

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/service/impl"
	"github.com/devtutor/devtutor-go/internal/testutil/mocks"
)

func setupSchema(t *testing.T) (*Schema, *mocks.MockBlogRepository, *mocks.MockCourseRepository) {
	t.Helper()
	blogRepo := mocks.NewMockBlogRepository()
	courseRepo := mocks.NewMockCourseRepository()

	resolver := NewResolver(impl.NewBlogService(blogRepo), impl.NewCourseService(courseRepo))
	schema, err := BuildSchema(resolver)
	if err != nil {
		t.Fatalf("BuildSchema() error = %v", err)
	}
	return schema, blogRepo, courseRepo
}

func execQuery(t *testing.T, schema *Schema, query string) *graphql.Result {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:        schema.Schema(),
		RequestString: query,
		Context:       context.Background(),
	})
	return result
}

func TestSchema_Blogs(t *testing.T) {
	schema, blogRepo, _ := setupSchema(t)

	blogRepo.AddBlog(&entity.Blog{
		Title:    "Visible",
		Slug:     "visible",
		Content:  "...",
		Category: entity.CategoryProgramming,
		AuthorID: "user-1",
		Status:   entity.BlogStatusPublished,
	})
	blogRepo.AddBlog(&entity.Blog{
		Title:  "Hidden",
		Slug:   "hidden",
		Status: entity.BlogStatusDraft,
	})

	result := execQuery(t, schema, `{
		blogs {
			items { title slug likeCount }
			pageInfo { totalItems page }
		}
	}`)
	if len(result.Errors) > 0 {
		t.Fatalf("query errors: %v", result.Errors)
	}

	data := result.Data.(map[string]interface{})
	conn := data["blogs"].(map[string]interface{})
	items := conn["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1 (draft excluded)", len(items))
	}
	first := items[0].(map[string]interface{})
	if first["slug"] != "visible" {
		t.Errorf("slug = %v, want visible", first["slug"])
	}

	pageInfo := conn["pageInfo"].(map[string]interface{})
	if pageInfo["totalItems"] != 1 {
		t.Errorf("totalItems = %v, want 1", pageInfo["totalItems"])
	}
}

func TestSchema_BlogBySlug(t *testing.T) {
	schema, blogRepo, _ := setupSchema(t)

	blogRepo.AddBlog(&entity.Blog{
		Title:    "Findable",
		Slug:     "findable",
		Content:  "body",
		Category: entity.CategoryProgramming,
		AuthorID: "user-1",
		Status:   entity.BlogStatusPublished,
	})

	result := execQuery(t, schema, `{ blog(slug: "findable") { title authorId } }`)
	if len(result.Errors) > 0 {
		t.Fatalf("query errors: %v", result.Errors)
	}
	blog := result.Data.(map[string]interface{})["blog"].(map[string]interface{})
	if blog["title"] != "Findable" {
		t.Errorf("title = %v, want Findable", blog["title"])
	}
	if blog["authorId"] != "user-1" {
		t.Errorf("authorId = %v, want user-1", blog["authorId"])
	}

	// A missing slug resolves to null rather than an error
	result = execQuery(t, schema, `{ blog(slug: "nope") { title } }`)
	if len(result.Errors) > 0 {
		t.Fatalf("query errors: %v", result.Errors)
	}
	if result.Data.(map[string]interface{})["blog"] != nil {
		t.Error("missing blog should resolve to null")
	}
}

func TestSchema_Courses(t *testing.T) {
	schema, _, courseRepo := setupSchema(t)

	courseRepo.AddCourse(&entity.Course{
		Title:        "CSS Mastery",
		Slug:         "css-mastery",
		Description:  "...",
		InstructorID: "instructor-1",
		Category:     entity.CourseCSS,
		Level:        entity.LevelBeginner,
		Price:        25,
		IsPublished:  true,
	})
	courseRepo.AddCourse(&entity.Course{
		Title:        "React Deep Dive",
		Slug:         "react-deep-dive",
		Description:  "...",
		InstructorID: "instructor-1",
		Category:     entity.CourseReact,
		Level:        entity.LevelAdvanced,
		IsPublished:  true,
	})

	result := execQuery(t, schema, `{
		courses(category: "CSS") {
			items { slug level enrolledCount }
			pageInfo { totalItems }
		}
	}`)
	if len(result.Errors) > 0 {
		t.Fatalf("query errors: %v", result.Errors)
	}

	conn := result.Data.(map[string]interface{})["courses"].(map[string]interface{})
	items := conn["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].(map[string]interface{})["slug"] != "css-mastery" {
		t.Errorf("slug = %v, want css-mastery", items[0].(map[string]interface{})["slug"])
	}
}

func TestSchema_MissingRequiredArg(t *testing.T) {
	schema, _, _ := setupSchema(t)

	result := execQuery(t, schema, `{ blog { title } }`)
	if len(result.Errors) == 0 {
		t.Error("blog without slug should fail validation")
	}
}
