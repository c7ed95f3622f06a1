package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmaki/rewarddining/internal/adapters/http/handlers"
	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/service"
)

type RestaurantController struct {
	restaurantService *service.RestaurantService
}

func NewRestaurantController(restaurantService *service.RestaurantService) *RestaurantController {
	return &RestaurantController{restaurantService: restaurantService}
}

type RestaurantResponse struct {
	ID                *domain.ID `json:"id"`
	MerchantNumber    string     `json:"merchantNumber"`
	Name              string     `json:"name"`
	BenefitPercentage string     `json:"benefitPercentage"`
	PolicyCode        string     `json:"policyCode"`
}

func NewRestaurantResponse(restaurant *domain.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:                restaurant.ID(),
		MerchantNumber:    restaurant.MerchantNumber(),
		Name:              restaurant.Name(),
		BenefitPercentage: restaurant.BenefitPercentage().String(),
		PolicyCode:        restaurant.Policy().Code(),
	}
}

// GetByMerchantNumber godoc
// @Summary     Get restaurant by merchant number
// @Description Returns the restaurant registered under the merchant number
// @Tags        restaurants
// @Produce     json
// @Param       merchantNumber path     string true "Merchant number"
// @Success     200            {object} RestaurantResponse
// @Failure     404            {object} handlers.ErrorResponse
// @Failure     500            {object} handlers.ErrorResponse
// @Router      /api/v1/restaurants/{merchantNumber} [get]
func (restaurantController *RestaurantController) GetByMerchantNumber(c *gin.Context) {
	restaurant, err := restaurantController.restaurantService.GetByMerchantNumber(c.Request.Context(), c.Param("merchantNumber"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewRestaurantResponse(restaurant))
}
