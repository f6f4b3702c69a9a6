package impl

import (
	"context"
	"time"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/utils"
)

// summaryMaxLen bounds the summary derived from the content when the
// author does not supply one.
const summaryMaxLen = 200

// blogService implements service.BlogService
type blogService struct {
	blogRepo repository.BlogRepository
}

// NewBlogService creates a new BlogService instance
func NewBlogService(blogRepo repository.BlogRepository) service.BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) Create(ctx context.Context, authorID string, req *request.CreateBlogRequest) (*response.BlogResponse, error) {
	category := entity.BlogCategory(req.Category)
	if !entity.ValidBlogCategory(category) {
		return nil, service.ErrInvalidCategory
	}

	slug := utils.Slugify(req.Title)
	taken, err := s.blogRepo.ExistsBySlug(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, service.ErrBlogSlugTaken
	}

	status := entity.BlogStatusPublished
	if req.Status != "" {
		status = entity.BlogStatus(req.Status)
	}

	summary := req.Summary
	if summary == "" {
		summary = utils.TruncateString(req.Content, summaryMaxLen)
	}

	blog := &entity.Blog{
		Title:    req.Title,
		Slug:     slug,
		Content:  req.Content,
		Summary:  summary,
		Category: category,
		Tags:     req.Tags,
		AuthorID: authorID,
		Status:   status,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	resp := response.NewBlogResponse(blog)
	return &resp, nil
}

func (s *blogService) ListPublished(ctx context.Context, filter request.BlogFilter, page, size int) (*response.PagedResponse[response.BlogResponse], error) {
	blogs, total, err := s.blogRepo.ListPublished(ctx, filter, page, size)
	if err != nil {
		return nil, err
	}

	items := make([]response.BlogResponse, len(blogs))
	for i, b := range blogs {
		items[i] = response.NewBlogResponse(b)
	}

	paged := response.NewPagedResponse(items, page, size, total)
	return &paged, nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*response.BlogResponse, error) {
	blog, err := s.blogRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, service.ErrBlogNotFound
	}

	resp := response.NewBlogResponse(blog)
	return &resp, nil
}

func (s *blogService) Update(ctx context.Context, blogID, userID string, req *request.UpdateBlogRequest) (*response.BlogResponse, error) {
	blog, err := s.ownedBlog(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" && req.Title != blog.Title {
		slug := utils.Slugify(req.Title)
		taken, err := s.blogRepo.ExistsBySlug(ctx, slug, blog.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, service.ErrBlogSlugTaken
		}
		blog.Title = req.Title
		blog.Slug = slug
	}
	if req.Content != "" {
		blog.Content = req.Content
	}
	if req.Summary != "" {
		blog.Summary = req.Summary
	}
	if req.Category != "" {
		category := entity.BlogCategory(req.Category)
		if !entity.ValidBlogCategory(category) {
			return nil, service.ErrInvalidCategory
		}
		blog.Category = category
	}
	if req.Tags != nil {
		blog.Tags = req.Tags
	}
	if req.Status != "" {
		blog.Status = entity.BlogStatus(req.Status)
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}

	resp := response.NewBlogResponse(blog)
	return &resp, nil
}

func (s *blogService) Delete(ctx context.Context, blogID, userID string) error {
	if _, err := s.ownedBlog(ctx, blogID, userID); err != nil {
		return err
	}
	return s.blogRepo.Delete(ctx, blogID)
}

func (s *blogService) ToggleLike(ctx context.Context, blogID, userID string) (*response.LikeResponse, error) {
	// Try to remove first; when nothing was removed the user had no like
	// and the toggle becomes an add.
	removed, err := s.blogRepo.RemoveLike(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}

	liked := false
	if !removed {
		matched, _, err := s.blogRepo.AddLike(ctx, blogID, userID)
		if err != nil {
			return nil, err
		}
		if !matched {
			return nil, service.ErrBlogNotFound
		}
		liked = true
	}

	count, err := s.blogRepo.CountLikes(ctx, blogID)
	if err != nil {
		return nil, err
	}

	return &response.LikeResponse{LikeCount: count, Liked: liked}, nil
}

func (s *blogService) AddComment(ctx context.Context, blogID, userID string, req *request.AddCommentRequest) (*response.BlogResponse, error) {
	comment := entity.Comment{
		AuthorID:  userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	matched, err := s.blogRepo.PushComment(ctx, blogID, comment)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, service.ErrBlogNotFound
	}

	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, service.ErrBlogNotFound
	}

	resp := response.NewBlogResponse(blog)
	return &resp, nil
}

// ownedBlog loads a blog and checks ownership. Missing and not-owned blogs
// are indistinguishable to the caller.
func (s *blogService) ownedBlog(ctx context.Context, blogID, userID string) (*entity.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil || !blog.OwnedBy(userID) {
		return nil, service.ErrBlogNotFound
	}
	return blog, nil
}
