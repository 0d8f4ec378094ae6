package models

import "time"

// Review and Q&A records mirror the backend shapes; the gateway proxies
// them without reinterpretation.

type Review struct {
	ID        string        `json:"id"`
	ProductID string        `json:"productId"`
	UserName  string        `json:"userName"`
	Rating    int           `json:"rating"`
	Title     string        `json:"title,omitempty"`
	Body      string        `json:"body"`
	Verified  bool          `json:"verified"`
	Replies   []ReviewReply `json:"replies,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ReviewReply struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"reviewId"`
	UserName  string    `json:"userName"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type Question struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserName  string    `json:"userName"`
	Body      string    `json:"body"`
	Answer    string    `json:"answer,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Title  string `json:"title"`
	Body   string `json:"body" binding:"required"`
}

type ReplyToReviewRequest struct {
	Body string `json:"body" binding:"required"`
}

type ReportReviewRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AskQuestionRequest struct {
	Body string `json:"body" binding:"required"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
