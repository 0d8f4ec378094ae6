package activity_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// RecordInteraction godoc
// @Summary Record a shopper interaction
// @Description Appends to the session's capped interaction log. The log never leaves the session; it only feeds the local popularity summaries.
// @Tags Session - Activity
// @Accept json
// @Produce json
// @Param interaction body models.RecordInteractionRequest true "Interaction"
// @Success 201 {object} models.ApiResponse "Interaction recorded"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /session/interactions [post]
func RecordInteraction(c *gin.Context) {
	var req models.RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	state, ok := loadState(c)
	if !ok {
		return
	}

	state.RecordInteraction(models.UserInteraction{
		Type:     req.Type,
		TargetID: req.TargetID,
		Category: req.Category,
		Query:    req.Query,
	})

	if !saveState(c, state) {
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Interaction recorded", gin.H{
		"logged": len(state.Interactions),
	}))
}

// GetPopular godoc
// @Summary Get this session's popular products and categories
// @Tags Session - Activity
// @Produce json
// @Param limit query int false "Max entries per list" default(5)
// @Success 200 {object} models.ApiResponse "Popular entries computed"
// @Router /session/popular [get]
func GetPopular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 || limit > 50 {
		limit = 5
	}

	state, ok := loadState(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Popular entries computed", gin.H{
		"products":   state.PopularProducts(limit),
		"categories": state.PopularCategories(limit),
	}))
}
