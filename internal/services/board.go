package services

import (
	"errors"

	"github.com/lemon-choi/RB-1/internal/models"

	"gorm.io/gorm"
)

type BoardService struct {
	db *gorm.DB
}

func NewBoardService(db *gorm.DB) *BoardService {
	return &BoardService{db: db}
}

// PostFilter narrows a post listing. Zero values mean no filtering.
type PostFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func (s *BoardService) ListPosts(filter PostFilter) ([]models.Post, *Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	query := s.db.Model(&models.Post{})

	if filter.Category != "" {
		var cat models.BoardCategory
		if err := s.db.Where("name = ?", filter.Category).First(&cat).Error; err == nil {
			query = query.Where("category_id = ?", cat.ID)
		}
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var posts []models.Post
	err := query.
		Preload("Author").
		Preload("Category").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return posts, &Pagination{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// GetPost returns a post and bumps its view count.
func (s *BoardService) GetPost(postID uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").Preload("Category").First(&post, postID).Error
	if err != nil {
		return nil, errors.New("post not found")
	}

	s.db.Model(&post).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	post.ViewCount++
	return &post, nil
}

func (s *BoardService) CreatePost(authorID uint, title, content string, categoryID *uint) (*models.Post, error) {
	if categoryID != nil {
		var cat models.BoardCategory
		if err := s.db.First(&cat, *categoryID).Error; err != nil {
			return nil, errors.New("board category not found")
		}
	}

	post := models.Post{
		AuthorID:   authorID,
		CategoryID: categoryID,
		Title:      title,
		Content:    content,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Author").Preload("Category").First(&post, post.ID)
	return &post, nil
}

func (s *BoardService) UpdatePost(postID, userID uint, role, title, content string, categoryID *uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		return nil, errors.New("post not found")
	}
	if post.AuthorID != userID && role != models.RoleAdmin {
		return nil, errors.New("only the author can edit this post")
	}

	post.Title = title
	post.Content = content
	post.CategoryID = categoryID
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Author").Preload("Category").First(&post, post.ID)
	return &post, nil
}

// DeletePost soft-deletes; listings exclude deleted posts automatically.
func (s *BoardService) DeletePost(postID, userID uint, role string) error {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		return errors.New("post not found")
	}
	if post.AuthorID != userID && role != models.RoleAdmin {
		return errors.New("only the author can delete this post")
	}
	return s.db.Delete(&post).Error
}

func (s *BoardService) ListCategories() ([]models.BoardCategory, error) {
	var categories []models.BoardCategory
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *BoardService) CreateCategory(name, color string) (*models.BoardCategory, error) {
	cat := models.BoardCategory{Name: name, Color: color}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, errors.New("category already exists")
	}
	return &cat, nil
}
