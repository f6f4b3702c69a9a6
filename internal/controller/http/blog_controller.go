package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/middleware"
	"github.com/devtutor/devtutor-go/internal/security"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// parsePagination reads page/size query params with sane bounds.
func parsePagination(ctx *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// BlogController handles blog endpoints
type BlogController struct {
	blogService     service.BlogService
	securityService *security.SecurityService
	authMiddleware  *middleware.AuthMiddleware
}

// NewBlogController creates a new BlogController instance
func NewBlogController(
	blogService service.BlogService,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
) *BlogController {
	return &BlogController{
		blogService:     blogService,
		securityService: securityService,
		authMiddleware:  authMiddleware,
	}
}

// RegisterRoutes registers the blog routes. Authoring requires the
// instructor or admin role; liking and commenting only requires
// authentication.
func (c *BlogController) RegisterRoutes(router *gin.RouterGroup) {
	blogs := router.Group("/blogs")
	{
		blogs.GET("", c.List)
		blogs.GET("/:slug", c.GetBySlug)

		authed := blogs.Group("", c.authMiddleware.Authenticate())
		{
			authed.POST("/:id/like", c.ToggleLike)
			authed.POST("/:id/comments", c.AddComment)

			authoring := authed.Group("", c.authMiddleware.RequireRole(entity.RoleInstructor, entity.RoleAdmin))
			{
				authoring.POST("", c.Create)
				authoring.PUT("/:id", c.Update)
				authoring.DELETE("/:id", c.Delete)
			}
		}
	}
}

// List returns published blogs
// @Summary List published blogs
// @Tags Blogs
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param category query string false "Filter by category"
// @Param tags query string false "Comma-separated tag filter"
// @Param search query string false "Title/content search"
// @Success 200 {object} response.ApiResponse[response.PagedResponse[response.BlogResponse]]
// @Router /api/v1/blogs [get]
func (c *BlogController) List(ctx *gin.Context) {
	page, size := parsePagination(ctx)

	filter := request.BlogFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	}
	if tags := ctx.Query("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	blogs, err := c.blogService.ListPublished(ctx.Request.Context(), filter, page, size)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to list blogs"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(blogs))
}

// GetBySlug returns a published blog by slug
// @Summary Get a published blog by slug
// @Tags Blogs
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} response.ApiResponse[response.BlogResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/blogs/{slug} [get]
func (c *BlogController) GetBySlug(ctx *gin.Context) {
	blog, err := c.blogService.GetBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		switch err {
		case service.ErrBlogNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("blog not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to load blog"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(blog))
}

// Create stores a new blog
// @Summary Create a blog post
// @Tags Blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateBlogRequest true "Blog creation request"
// @Success 201 {object} response.ApiResponse[response.BlogResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/blogs [post]
func (c *BlogController) Create(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	var req request.CreateBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	blog, err := c.blogService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch err {
		case service.ErrInvalidCategory:
			ctx.JSON(http.StatusBadRequest, response.NewFail[any]("invalid category"))
		case service.ErrBlogSlugTaken:
			ctx.JSON(http.StatusConflict, response.NewFail[any]("a blog with this title already exists"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to create blog"))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(blog, "Blog created successfully"))
}

// Update applies a partial update to an owned blog
// @Summary Update a blog post
// @Tags Blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog id"
// @Param request body request.UpdateBlogRequest true "Blog update request"
// @Success 200 {object} response.ApiResponse[response.BlogResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/blogs/{id} [put]
func (c *BlogController) Update(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	var req request.UpdateBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	blog, err := c.blogService.Update(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		switch err {
		case service.ErrBlogNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("blog not found"))
		case service.ErrInvalidCategory:
			ctx.JSON(http.StatusBadRequest, response.NewFail[any]("invalid category"))
		case service.ErrBlogSlugTaken:
			ctx.JSON(http.StatusConflict, response.NewFail[any]("a blog with this title already exists"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to update blog"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(blog, "Blog updated successfully"))
}

// Delete removes an owned blog
// @Summary Delete a blog post
// @Tags Blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog id"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/blogs/{id} [delete]
func (c *BlogController) Delete(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	if err := c.blogService.Delete(ctx.Request.Context(), ctx.Param("id"), userID); err != nil {
		switch err {
		case service.ErrBlogNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("blog not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to delete blog"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Blog deleted successfully"))
}

// ToggleLike flips the caller's like on a blog
// @Summary Toggle a like on a blog post
// @Tags Blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog id"
// @Success 200 {object} response.ApiResponse[response.LikeResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/blogs/{id}/like [post]
func (c *BlogController) ToggleLike(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	like, err := c.blogService.ToggleLike(ctx.Request.Context(), ctx.Param("id"), userID)
	if err != nil {
		switch err {
		case service.ErrBlogNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("blog not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to toggle like"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(like))
}

// AddComment appends a comment to a blog
// @Summary Comment on a blog post
// @Tags Blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog id"
// @Param request body request.AddCommentRequest true "Comment request"
// @Success 201 {object} response.ApiResponse[response.BlogResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/blogs/{id}/comments [post]
func (c *BlogController) AddComment(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	var req request.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	blog, err := c.blogService.AddComment(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		switch err {
		case service.ErrBlogNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("blog not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to add comment"))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(blog, "Comment added successfully"))
}
