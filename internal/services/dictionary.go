package services

import (
	"errors"

	"github.com/lemon-choi/RB-1/internal/models"

	"gorm.io/gorm"
)

type DictionaryService struct {
	db *gorm.DB
}

func NewDictionaryService(db *gorm.DB) *DictionaryService {
	return &DictionaryService{db: db}
}

// TermFilter narrows a term listing. Zero values mean no filtering.
type TermFilter struct {
	Category string
	Search   string
	Featured bool
}

func (s *DictionaryService) ListTerms(filter TermFilter) ([]models.Term, error) {
	query := s.db.Model(&models.Term{})

	if filter.Category != "" {
		var cat models.DictionaryCategory
		if err := s.db.Where("name = ?", filter.Category).First(&cat).Error; err == nil {
			query = query.Where("category_id = ?", cat.ID)
		}
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR title_en ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}

	var terms []models.Term
	err := query.
		Preload("Category").
		Order("is_featured DESC").
		Order("title ASC").
		Find(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}

func (s *DictionaryService) GetTerm(termID uint) (*models.Term, error) {
	var term models.Term
	if err := s.db.Preload("Category").First(&term, termID).Error; err != nil {
		return nil, errors.New("term not found")
	}
	return &term, nil
}

func (s *DictionaryService) CreateTerm(term *models.Term) (*models.Term, error) {
	if term.CategoryID != nil {
		var cat models.DictionaryCategory
		if err := s.db.First(&cat, *term.CategoryID).Error; err != nil {
			return nil, errors.New("dictionary category not found")
		}
	}
	if err := s.db.Create(term).Error; err != nil {
		return nil, err
	}
	s.db.Preload("Category").First(term, term.ID)
	return term, nil
}

func (s *DictionaryService) UpdateTerm(termID uint, updated *models.Term) (*models.Term, error) {
	var term models.Term
	if err := s.db.First(&term, termID).Error; err != nil {
		return nil, errors.New("term not found")
	}

	term.Title = updated.Title
	term.TitleEn = updated.TitleEn
	term.Description = updated.Description
	term.Example = updated.Example
	term.CategoryID = updated.CategoryID
	term.IsFeatured = updated.IsFeatured
	term.ImageURL = updated.ImageURL
	if err := s.db.Save(&term).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Category").First(&term, term.ID)
	return &term, nil
}

func (s *DictionaryService) DeleteTerm(termID uint) error {
	result := s.db.Delete(&models.Term{}, termID)
	if result.RowsAffected == 0 {
		return errors.New("term not found")
	}
	return result.Error
}

func (s *DictionaryService) ListCategories() ([]models.DictionaryCategory, error) {
	var categories []models.DictionaryCategory
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *DictionaryService) CreateCategory(name, color string) (*models.DictionaryCategory, error) {
	cat := models.DictionaryCategory{Name: name, Color: color}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, errors.New("category already exists")
	}
	return &cat, nil
}
