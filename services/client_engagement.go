package services

import (
	"context"
	"net/http"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// ─────────────────────────────────────────────────────────────
// Reviews & Q&A
// ─────────────────────────────────────────────────────────────

func (c *StorefrontClient) GetReviews(ctx context.Context, productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.get(ctx, "/products/"+escape(productID)+"/reviews", "", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *StorefrontClient) CreateReview(ctx context.Context, token, productID string, req models.CreateReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := c.post(ctx, "/products/"+escape(productID)+"/reviews", token, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *StorefrontClient) ReplyToReview(ctx context.Context, token, reviewID string, req models.ReplyToReviewRequest) (*models.ReviewReply, error) {
	var reply models.ReviewReply
	if err := c.post(ctx, "/reviews/"+escape(reviewID)+"/replies", token, req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *StorefrontClient) ReportReview(ctx context.Context, token, reviewID string, req models.ReportReviewRequest) error {
	return c.post(ctx, "/reviews/"+escape(reviewID)+"/report", token, req, nil)
}

func (c *StorefrontClient) GetQuestions(ctx context.Context, productID string) ([]models.Question, error) {
	var questions []models.Question
	if err := c.get(ctx, "/products/"+escape(productID)+"/questions", "", &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *StorefrontClient) AskQuestion(ctx context.Context, token, productID string, req models.AskQuestionRequest) (*models.Question, error) {
	var question models.Question
	if err := c.post(ctx, "/products/"+escape(productID)+"/questions", token, req, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// ─────────────────────────────────────────────────────────────
// Contact
// ─────────────────────────────────────────────────────────────

func (c *StorefrontClient) SubmitContact(ctx context.Context, req models.ContactRequest) error {
	return c.post(ctx, "/contact/messages", "", req, nil)
}

// ─────────────────────────────────────────────────────────────
// Wishlist sync (authenticated shoppers only)
// ─────────────────────────────────────────────────────────────

// AddWishlistRemote mirrors a local wishlist add to the shopper's
// server-side wishlist. Best effort; local state never waits on it.
func (c *StorefrontClient) AddWishlistRemote(ctx context.Context, token, productID string) error {
	return c.post(ctx, "/wishlist/items", token, map[string]string{"productId": productID}, nil)
}

func (c *StorefrontClient) RemoveWishlistRemote(ctx context.Context, token, productID string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/items/"+escape(productID), token, nil, nil)
}
