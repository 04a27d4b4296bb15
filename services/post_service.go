package services

import (
	"errors"

	"blog/models"
	"blog/utils"

	"gorm.io/gorm"
)

const DefaultPageSize = 10

type PostService struct {
	db       *gorm.DB
	pageSize int
}

func NewPostService(db *gorm.DB, pageSize int) *PostService {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &PostService{db: db, pageSize: pageSize}
}

func (s *PostService) PageSize() int {
	return s.pageSize
}

func (s *PostService) ListPosts(page int) (*models.Page, error) {
	var count int64
	if err := s.db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return nil, err
	}

	p := Paginate(count, page, s.pageSize)

	posts := []models.Post{}
	if p.InRange() {
		err := s.db.Preload("Author").
			Order("datetime DESC").
			Order("id DESC").
			Offset(p.Start).
			Limit(s.pageSize).
			Find(&posts).Error
		if err != nil {
			return nil, err
		}
	}

	return &models.Page{
		Posts:      posts,
		Page:       p.Page,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
		Count:      count,
	}, nil
}

// ListByAuthor replaces an ORM back-collection with an explicit query.
func (s *PostService) ListByAuthor(authorID uint) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.Where("author_id = ?", authorID).
		Order("datetime DESC").
		Order("id DESC").
		Find(&posts).Error
	return posts, err
}

func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	return findPost(s.db.Preload("Author"), id)
}

func (s *PostService) CreatePost(authorID uint, form *models.PostForm) (*models.Post, error) {
	post := &models.Post{
		Title:    form.Title,
		Content:  utils.RenderMarkdown(form.Content),
		Source:   form.Content,
		AuthorID: authorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost re-renders the content and leaves Datetime untouched. Content
// submitted back exactly as the stored HTML is kept as is: rendering HTML a
// second time is not stable.
func (s *PostService) UpdatePost(id, userID uint, form *models.PostForm) (*models.Post, error) {
	var post *models.Post

	err := s.db.Transaction(func(tx *gorm.DB) error {
		found, err := authoredPost(tx, id, userID)
		if err != nil {
			return err
		}

		found.Title = form.Title
		if form.Content != found.Content {
			found.Source = form.Content
			found.Content = utils.RenderMarkdown(form.Content)
		}
		if err := tx.Model(found).Select("title", "content", "source").Updates(found).Error; err != nil {
			return err
		}

		post = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) DeletePost(id, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		post, err := authoredPost(tx, id, userID)
		if err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

// AuthorizeAuthor loads the post and checks that userID wrote it.
func (s *PostService) AuthorizeAuthor(id, userID uint) (*models.Post, error) {
	return authoredPost(s.db, id, userID)
}

func authoredPost(db *gorm.DB, id, userID uint) (*models.Post, error) {
	post, err := findPost(db, id)
	if err != nil {
		return nil, err
	}
	if !post.IsAuthoredBy(userID) {
		return nil, ErrNotAuthor
	}
	return post, nil
}

func findPost(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	if err := db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}
