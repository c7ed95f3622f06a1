package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmaki/rewarddining/internal/adapters/http/handlers"
	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/dto"
	"github.com/lmaki/rewarddining/internal/core/service"
	"github.com/lmaki/rewarddining/internal/core/serviceerrors"
)

type RewardController struct {
	rewardService *service.RewardService
}

func NewRewardController(rewardService *service.RewardService) *RewardController {
	return &RewardController{rewardService: rewardService}
}

type RewardConfirmationResponse struct {
	ConfirmationNumber string               `json:"confirmationNumber"`
	Contribution       ContributionResponse `json:"contribution"`
}

func NewRewardConfirmationResponse(confirmation *domain.RewardConfirmation) RewardConfirmationResponse {
	return RewardConfirmationResponse{
		ConfirmationNumber: confirmation.ConfirmationNumber,
		Contribution:       NewContributionResponse(&confirmation.Contribution),
	}
}

// RewardAccountFor godoc
// @Summary     Reward a dining
// @Description Contributes a restaurant benefit to the account behind the dining's credit card
// @Tags        rewards
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                 false "Idempotency key"
// @Param       request         body     dto.RewardDiningRequest true  "Dining data"
// @Success     201             {object} RewardConfirmationResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/rewards [post]
func (rewardController *RewardController) RewardAccountFor(c *gin.Context) {
	var request dto.RewardDiningRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	confirmation, err := rewardController.rewardService.RewardAccountFor(c.Request.Context(), idempotencyKey, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewRewardConfirmationResponse(confirmation))
}
