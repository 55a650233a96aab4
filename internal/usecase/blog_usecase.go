package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"practice-site/internal/converter"
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
	"practice-site/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrBlogPostNotFound = errors.New("blog post not found")
)

type BlogUsecase interface {
	List(ctx context.Context, query dto.BlogListQuery) ([]entity.BlogPost, Pagination, error)
	View(ctx context.Context, id string) (*entity.BlogPost, error)
	ViewBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	Like(ctx context.Context, id string) (*dto.BlogLikeResponse, error)
	Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*entity.BlogPost, error)
	Update(ctx context.Context, id string, req *dto.UpdateBlogPostRequest) (*entity.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type blogUsecase struct {
	data         *DataAccess
	log          *logrus.Logger
	auditService service.AuditService
}

func NewBlogUsecase(data *DataAccess, log *logrus.Logger, auditService service.AuditService) BlogUsecase {
	return &blogUsecase{
		data:         data,
		log:          log,
		auditService: auditService,
	}
}

// List filters the posts, orders them newest first by publishDate and
// returns the requested page.
func (u *blogUsecase) List(ctx context.Context, query dto.BlogListQuery) ([]entity.BlogPost, Pagination, error) {
	doc, err := u.data.readOrEmpty(ctx)
	if err != nil {
		u.log.Warnf("Failed to read blog posts: %+v", err)
		return nil, Pagination{}, err
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	posts := make([]entity.BlogPost, 0, len(doc.BlogPosts))
	for _, p := range doc.BlogPosts {
		if query.Category != "" && !strings.EqualFold(p.Category, query.Category) {
			continue
		}
		if query.FeaturedOnly && !p.Featured {
			continue
		}
		if query.PublishedOnly && !p.Published {
			continue
		}
		if search != "" && !p.Matches(search) {
			continue
		}
		posts = append(posts, p)
	}

	sortPostsNewestFirst(posts)

	page, pagination := paginate(posts, query.Page, query.Limit)
	return page, pagination, nil
}

// View returns the post and counts the read. Repeated reads are all counted.
func (u *blogUsecase) View(ctx context.Context, id string) (*entity.BlogPost, error) {
	return u.incrementViews(ctx, func(doc *entity.SiteDocument) int { return findBlogPost(doc, id) })
}

func (u *blogUsecase) ViewBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return u.incrementViews(ctx, func(doc *entity.SiteDocument) int { return findBlogPostBySlug(doc, slug) })
}

func (u *blogUsecase) incrementViews(ctx context.Context, find func(doc *entity.SiteDocument) int) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := find(doc)
		if i < 0 {
			return ErrBlogPostNotFound
		}
		doc.BlogPosts[i].Views++
		post = doc.BlogPosts[i]
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrBlogPostNotFound) {
			u.log.Warnf("Failed to increment blog views: %+v", err)
		}
		return nil, err
	}

	return &post, nil
}

func (u *blogUsecase) Like(ctx context.Context, id string) (*dto.BlogLikeResponse, error) {
	var likes int
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := findBlogPost(doc, id)
		if i < 0 {
			return ErrBlogPostNotFound
		}
		doc.BlogPosts[i].Likes++
		likes = doc.BlogPosts[i].Likes
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrBlogPostNotFound) {
			u.log.Warnf("Failed to increment blog likes: %+v", err)
		}
		return nil, err
	}

	return &dto.BlogLikeResponse{ID: id, Likes: likes}, nil
}

func (u *blogUsecase) Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*entity.BlogPost, error) {
	var created entity.BlogPost
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		id := newID(entity.BlogPostIDPrefix, func(id string) bool { return findBlogPost(doc, id) >= 0 })
		created = converter.CreateBlogPostRequestToEntity(id, u.data.today(), req)
		doc.BlogPosts = append(doc.BlogPosts, created)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create blog post: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, service.AuditActionBlogCreate, "blog_post", created.ID, created.Title)

	return &created, nil
}

func (u *blogUsecase) Update(ctx context.Context, id string, req *dto.UpdateBlogPostRequest) (*entity.BlogPost, error) {
	var updated entity.BlogPost
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := findBlogPost(doc, id)
		if i < 0 {
			return ErrBlogPostNotFound
		}
		converter.ApplyBlogPostUpdate(&doc.BlogPosts[i], req)
		updated = doc.BlogPosts[i]
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrBlogPostNotFound) {
			u.log.Warnf("Failed to update blog post: %+v", err)
		}
		return nil, err
	}

	u.auditService.LogUpdate(ctx, service.AuditActionBlogUpdate, "blog_post", id, nil, updated.Title)

	return &updated, nil
}

// Delete removes the post. Deleting an unknown id succeeds without writing.
func (u *blogUsecase) Delete(ctx context.Context, id string) error {
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := findBlogPost(doc, id)
		if i < 0 {
			return errNoChange
		}
		doc.BlogPosts = append(doc.BlogPosts[:i], doc.BlogPosts[i+1:]...)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete blog post: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, service.AuditActionBlogDelete, "blog_post", id)

	return nil
}

// sortPostsNewestFirst orders by publishDate descending. Dates are
// YYYY-MM-DD so string order is date order; ties keep insertion order.
func sortPostsNewestFirst(posts []entity.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishDate > posts[j].PublishDate
	})
}

func findBlogPost(doc *entity.SiteDocument, id string) int {
	for i := range doc.BlogPosts {
		if doc.BlogPosts[i].ID == id {
			return i
		}
	}
	return -1
}

func findBlogPostBySlug(doc *entity.SiteDocument, slug string) int {
	for i := range doc.BlogPosts {
		if doc.BlogPosts[i].Slug == slug {
			return i
		}
	}
	return -1
}
