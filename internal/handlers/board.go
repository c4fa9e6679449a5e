package handlers

import (
	"net/http"
	"strconv"

	"github.com/lemon-choi/RB-1/internal/services"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boardService *services.BoardService
}

func NewBoardHandler(boardService *services.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

type CreatePostRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=255" example:"첫 글입니다"`
	Content    string `json:"content" binding:"required,min=1" example:"안녕하세요!"`
	CategoryID *uint  `json:"category_id,omitempty"`
}

type UpdatePostRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=255"`
	Content    string `json:"content" binding:"required,min=1"`
	CategoryID *uint  `json:"category_id,omitempty"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100" example:"자유"`
	Color string `json:"color" binding:"omitempty,hexcolor" example:"#FFB6C1"`
}

type PostListResponse struct {
	Items      []Post              `json:"items"`
	Pagination services.Pagination `json:"pagination"`
}

// ListPosts godoc
// @Summary      List posts
// @Description  List board posts with pagination, category and search filters
// @Tags         board
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(20)
// @Param        category query string false "Category name"
// @Param        search query string false "Search in title and content"
// @Success      200 {object} PostListResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/posts [get]
func (h *BoardHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	posts, pagination, err := h.boardService.ListPosts(services.PostFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, PostListResponse{Items: posts, Pagination: *pagination})
}

// GetPost godoc
// @Summary      Get a post
// @Description  Get one post and increment its view count
// @Tags         board
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {object} Post
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/posts/{id} [get]
func (h *BoardHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid post id"})
		return
	}

	post, err := h.boardService.GetPost(uint(postID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201 {object} Post
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/posts [post]
func (h *BoardHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	post, err := h.boardService.CreatePost(userID, req.Title, req.Content, req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Update a post; only the author or an admin may edit
// @Tags         board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body UpdatePostRequest true "Post data"
// @Success      200 {object} Post
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/posts/{id} [put]
func (h *BoardHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint("user_id")
	role := c.GetString("role")
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid post id"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	post, err := h.boardService.UpdatePost(uint(postID), userID, role, req.Title, req.Content, req.CategoryID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Soft-delete a post; only the author or an admin may delete
// @Tags         board
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/posts/{id} [delete]
func (h *BoardHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint("user_id")
	role := c.GetString("role")
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid post id"})
		return
	}

	if err := h.boardService.DeletePost(uint(postID), userID, role); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "post deleted"})
}

// ListCategories godoc
// @Summary      List board categories
// @Tags         board
// @Produce      json
// @Success      200 {array} BoardCategory
// @Router       /api/v1/board-categories [get]
func (h *BoardHandler) ListCategories(c *gin.Context) {
	categories, err := h.boardService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary      Create a board category
// @Description  Admin only
// @Tags         board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      201 {object} BoardCategory
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/board-categories [post]
func (h *BoardHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cat, err := h.boardService.CreateCategory(req.Name, req.Color)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cat)
}
