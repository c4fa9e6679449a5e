package handlers

import (
	"net/http"
	"strconv"

	"github.com/lemon-choi/RB-1/internal/models"
	"github.com/lemon-choi/RB-1/internal/services"

	"github.com/gin-gonic/gin"
)

type DictionaryHandler struct {
	dictService *services.DictionaryService
}

func NewDictionaryHandler(dictService *services.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{dictService: dictService}
}

type TermRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255" example:"에이섹슈얼"`
	TitleEn     string `json:"title_en" binding:"omitempty,max=255" example:"Asexual"`
	Description string `json:"description" binding:"required,min=1"`
	Example     string `json:"example"`
	CategoryID  *uint  `json:"category_id,omitempty"`
	IsFeatured  bool   `json:"is_featured"`
	ImageURL    string `json:"image_url" binding:"omitempty,max=500"`
}

// ListTerms godoc
// @Summary      List dictionary terms
// @Description  List terms with category, search and featured filters
// @Tags         dictionary
// @Produce      json
// @Param        category query string false "Category name"
// @Param        search query string false "Search in titles and description"
// @Param        featured query bool false "Featured terms only"
// @Success      200 {array} Term
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/dictionary/terms [get]
func (h *DictionaryHandler) ListTerms(c *gin.Context) {
	terms, err := h.dictService.ListTerms(services.TermFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Featured: c.Query("featured") == "true",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, terms)
}

// GetTerm godoc
// @Summary      Get a term
// @Tags         dictionary
// @Produce      json
// @Param        id path int true "Term ID"
// @Success      200 {object} Term
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/dictionary/terms/{id} [get]
func (h *DictionaryHandler) GetTerm(c *gin.Context) {
	termID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid term id"})
		return
	}

	term, err := h.dictService.GetTerm(uint(termID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, term)
}

// CreateTerm godoc
// @Summary      Create a term
// @Description  Admin only
// @Tags         dictionary
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TermRequest true "Term data"
// @Success      201 {object} Term
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/dictionary/terms [post]
func (h *DictionaryHandler) CreateTerm(c *gin.Context) {
	var req TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	term, err := h.dictService.CreateTerm(&models.Term{
		Title:       req.Title,
		TitleEn:     req.TitleEn,
		Description: req.Description,
		Example:     req.Example,
		CategoryID:  req.CategoryID,
		IsFeatured:  req.IsFeatured,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, term)
}

// UpdateTerm godoc
// @Summary      Update a term
// @Description  Admin only
// @Tags         dictionary
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Term ID"
// @Param        request body TermRequest true "Term data"
// @Success      200 {object} Term
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/dictionary/terms/{id} [put]
func (h *DictionaryHandler) UpdateTerm(c *gin.Context) {
	termID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid term id"})
		return
	}

	var req TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	term, err := h.dictService.UpdateTerm(uint(termID), &models.Term{
		Title:       req.Title,
		TitleEn:     req.TitleEn,
		Description: req.Description,
		Example:     req.Example,
		CategoryID:  req.CategoryID,
		IsFeatured:  req.IsFeatured,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, term)
}

// DeleteTerm godoc
// @Summary      Delete a term
// @Description  Admin only
// @Tags         dictionary
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Term ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/dictionary/terms/{id} [delete]
func (h *DictionaryHandler) DeleteTerm(c *gin.Context) {
	termID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid term id"})
		return
	}

	if err := h.dictService.DeleteTerm(uint(termID)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "term deleted"})
}

// ListCategories godoc
// @Summary      List dictionary categories
// @Tags         dictionary
// @Produce      json
// @Success      200 {array} DictionaryCategory
// @Router       /api/v1/dictionary/categories [get]
func (h *DictionaryHandler) ListCategories(c *gin.Context) {
	categories, err := h.dictService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary      Create a dictionary category
// @Description  Admin only
// @Tags         dictionary
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      201 {object} DictionaryCategory
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/dictionary/categories [post]
func (h *DictionaryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cat, err := h.dictService.CreateCategory(req.Name, req.Color)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cat)
}
