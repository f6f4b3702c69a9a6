package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
)

// Resolver handles GraphQL resolvers. The surface is read-only; writes go
// through the REST API.
type Resolver struct {
	blogService   service.BlogService
	courseService service.CourseService
}

// NewResolver creates a new resolver
func NewResolver(blogService service.BlogService, courseService service.CourseService) *Resolver {
	return &Resolver{
		blogService:   blogService,
		courseService: courseService,
	}
}

// Blogs lists published blogs with pagination
func (r *Resolver) Blogs(p graphql.ResolveParams) (interface{}, error) {
	page, size := paginationArgs(p)

	filter := request.BlogFilter{}
	if category, ok := p.Args["category"].(string); ok {
		filter.Category = category
	}
	if search, ok := p.Args["search"].(string); ok {
		filter.Search = search
	}

	return r.blogService.ListPublished(p.Context, filter, page, size)
}

// Blog returns a published blog by slug
func (r *Resolver) Blog(p graphql.ResolveParams) (interface{}, error) {
	slug := p.Args["slug"].(string)

	blog, err := r.blogService.GetBySlug(p.Context, slug)
	if err == service.ErrBlogNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// Courses lists published courses with pagination
func (r *Resolver) Courses(p graphql.ResolveParams) (interface{}, error) {
	page, size := paginationArgs(p)

	filter := request.CourseFilter{}
	if category, ok := p.Args["category"].(string); ok {
		filter.Category = category
	}
	if level, ok := p.Args["level"].(string); ok {
		filter.Level = level
	}
	if search, ok := p.Args["search"].(string); ok {
		filter.Search = search
	}

	return r.courseService.ListPublished(p.Context, filter, page, size)
}

// Course returns a published course by slug
func (r *Resolver) Course(p graphql.ResolveParams) (interface{}, error) {
	slug := p.Args["slug"].(string)

	course, err := r.courseService.GetBySlug(p.Context, slug)
	if err == service.ErrCourseNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return course, nil
}

func paginationArgs(p graphql.ResolveParams) (page, size int) {
	page, _ = p.Args["page"].(int)
	if page < 1 {
		page = 1
	}
	size, _ = p.Args["size"].(int)
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
