package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/middleware"
	"github.com/devtutor/devtutor-go/internal/security"
)

// CourseController handles course endpoints
type CourseController struct {
	courseService   service.CourseService
	securityService *security.SecurityService
	authMiddleware  *middleware.AuthMiddleware
}

// NewCourseController creates a new CourseController instance
func NewCourseController(
	courseService service.CourseService,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
) *CourseController {
	return &CourseController{
		courseService:   courseService,
		securityService: securityService,
		authMiddleware:  authMiddleware,
	}
}

// RegisterRoutes registers the course routes. Creating and editing courses
// requires the instructor or admin role; enrolling and reviewing only
// requires authentication.
func (c *CourseController) RegisterRoutes(router *gin.RouterGroup) {
	courses := router.Group("/courses")
	{
		courses.GET("", c.List)
		courses.GET("/:slug", c.GetBySlug)

		authed := courses.Group("", c.authMiddleware.Authenticate())
		{
			authed.POST("/:id/enroll", c.Enroll)
			authed.POST("/:id/reviews", c.AddReview)

			teaching := authed.Group("", c.authMiddleware.RequireRole(entity.RoleInstructor, entity.RoleAdmin))
			{
				teaching.POST("", c.Create)
				teaching.PUT("/:id", c.Update)
				teaching.DELETE("/:id", c.Delete)
			}
		}
	}
}

// List returns published courses
// @Summary List published courses
// @Tags Courses
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param category query string false "Filter by category"
// @Param level query string false "Filter by level"
// @Param max_price query number false "Maximum price"
// @Param search query string false "Title/description search"
// @Success 200 {object} response.ApiResponse[response.PagedResponse[response.CourseResponse]]
// @Router /api/v1/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	page, size := parsePagination(ctx)

	filter := request.CourseFilter{
		Category: ctx.Query("category"),
		Level:    ctx.Query("level"),
		Search:   ctx.Query("search"),
	}
	if raw := ctx.Query("max_price"); raw != "" {
		if maxPrice, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &maxPrice
		}
	}

	courses, err := c.courseService.ListPublished(ctx.Request.Context(), filter, page, size)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to list courses"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(courses))
}

// GetBySlug returns a published course by slug
// @Summary Get a published course by slug
// @Tags Courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} response.ApiResponse[response.CourseResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/courses/{slug} [get]
func (c *CourseController) GetBySlug(ctx *gin.Context) {
	course, err := c.courseService.GetBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		switch err {
		case service.ErrCourseNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("course not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to load course"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(course))
}

// Create stores a new course
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateCourseRequest true "Course creation request"
// @Success 201 {object} response.ApiResponse[response.CourseResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	var req request.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch err {
		case service.ErrInvalidCategory:
			ctx.JSON(http.StatusBadRequest, response.NewFail[any]("invalid category"))
		case service.ErrInvalidLevel:
			ctx.JSON(http.StatusBadRequest, response.NewFail[any]("invalid level"))
		case service.ErrCourseSlugTaken:
			ctx.JSON(http.StatusConflict, response.NewFail[any]("a course with this title already exists"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to create course"))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(course, "Course created successfully"))
}

// Update applies a partial update to an owned course
// @Summary Update a course
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Param request body request.UpdateCourseRequest true "Course update request"
// @Success 200 {object} response.ApiResponse[response.CourseResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	var req request.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.Update(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		switch err {
		case service.ErrCourseNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("course not found"))
		case service.ErrInvalidCategory:
			ctx.JSON(http.StatusBadRequest, response.NewFail[any]("invalid category"))
		case service.ErrInvalidLevel:
			ctx.JSON(http.StatusBadRequest, response.NewFail[any]("invalid level"))
		case service.ErrCourseSlugTaken:
			ctx.JSON(http.StatusConflict, response.NewFail[any]("a course with this title already exists"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to update course"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(course, "Course updated successfully"))
}

// Delete removes an owned course
// @Summary Delete a course
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	if err := c.courseService.Delete(ctx.Request.Context(), ctx.Param("id"), userID); err != nil {
		switch err {
		case service.ErrCourseNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("course not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to delete course"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Course deleted successfully"))
}

// Enroll adds the caller to the course's student set
// @Summary Enroll in a course
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Success 200 {object} response.ApiResponse[response.CourseResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	course, err := c.courseService.Enroll(ctx.Request.Context(), ctx.Param("id"), userID)
	if err != nil {
		switch err {
		case service.ErrCourseNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("course not found"))
		case service.ErrAlreadyEnrolled:
			ctx.JSON(http.StatusConflict, response.NewFail[any]("already enrolled in this course"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("enrollment failed"))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(course, "Enrolled successfully"))
}

// AddReview appends the caller's review
// @Summary Review a course
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Param request body request.AddReviewRequest true "Review request"
// @Success 201 {object} response.ApiResponse[response.CourseResponse]
// @Failure 403 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/courses/{id}/reviews [post]
func (c *CourseController) AddReview(ctx *gin.Context) {
	userID := c.securityService.GetCurrentUserID(ctx)

	var req request.AddReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFailWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.AddReview(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		switch err {
		case service.ErrCourseNotFound:
			ctx.JSON(http.StatusNotFound, response.NewFail[any]("course not found"))
		case service.ErrNotEnrolled:
			ctx.JSON(http.StatusForbidden, response.NewFail[any]("must be enrolled to review"))
		case service.ErrAlreadyReviewed:
			ctx.JSON(http.StatusConflict, response.NewFail[any]("course already reviewed"))
		default:
			ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("failed to add review"))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(course, "Review added successfully"))
}
