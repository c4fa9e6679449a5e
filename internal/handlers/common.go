package handlers

import "github.com/lemon-choi/RB-1/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type User = models.User
type Post = models.Post
type BoardCategory = models.BoardCategory
type Term = models.Term
type DictionaryCategory = models.DictionaryCategory
type QuizResultRecord = models.QuizResultRecord
