package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lmaki/rewarddining/internal/adapters/http/handlers"
	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/dto"
	"github.com/lmaki/rewarddining/internal/core/service"
	"github.com/lmaki/rewarddining/internal/core/serviceerrors"
)

type AccountController struct {
	accountService *service.AccountService
}

func NewAccountController(accountService *service.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

type BeneficiaryResponse struct {
	ID                   *domain.ID `json:"id"`
	Name                 string     `json:"name"`
	AllocationPercentage string     `json:"allocationPercentage"`
	Savings              string     `json:"savings"`
}

type AccountResponse struct {
	ID            *domain.ID            `json:"id"`
	Number        string                `json:"number"`
	Name          string                `json:"name"`
	Beneficiaries []BeneficiaryResponse `json:"beneficiaries"`
}

type DistributionResponse struct {
	BeneficiaryName string `json:"beneficiaryName"`
	Amount          string `json:"amount"`
	Percentage      string `json:"percentage"`
	TotalSavings    string `json:"totalSavings"`
}

type ContributionResponse struct {
	AccountNumber string                 `json:"accountNumber"`
	Amount        string                 `json:"amount"`
	Distributions []DistributionResponse `json:"distributions"`
}

func NewAccountResponse(account *domain.Account) AccountResponse {
	beneficiaries := account.Beneficiaries()
	response := AccountResponse{
		ID:            account.ID(),
		Number:        account.Number(),
		Name:          account.Name(),
		Beneficiaries: make([]BeneficiaryResponse, len(beneficiaries)),
	}
	for i, b := range beneficiaries {
		response.Beneficiaries[i] = BeneficiaryResponse{
			ID:                   b.ID(),
			Name:                 b.Name(),
			AllocationPercentage: b.AllocationPercentage().String(),
			Savings:              b.Savings().String(),
		}
	}
	return response
}

func NewContributionResponse(contribution *domain.AccountContribution) ContributionResponse {
	response := ContributionResponse{
		AccountNumber: contribution.AccountNumber,
		Amount:        contribution.Amount.String(),
		Distributions: make([]DistributionResponse, len(contribution.Distributions)),
	}
	for i, d := range contribution.Distributions {
		response.Distributions[i] = DistributionResponse{
			BeneficiaryName: d.BeneficiaryName,
			Amount:          d.Amount.String(),
			Percentage:      d.Percentage.String(),
			TotalSavings:    d.TotalSavings.String(),
		}
	}
	return response
}

func accountIDParam(c *gin.Context) (domain.ID, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid account ID"))
		return 0, false
	}
	return domain.ID(id), true
}

// GetAllAccounts godoc
// @Summary     List accounts
// @Description Returns every account with its beneficiaries
// @Tags        accounts
// @Produce     json
// @Success     200 {array}  AccountResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/accounts [get]
func (accountController *AccountController) GetAllAccounts(c *gin.Context) {
	accounts, err := accountController.accountService.GetAllAccounts(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	response := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		response[i] = NewAccountResponse(account)
	}
	c.JSON(http.StatusOK, response)
}

// GetAccountByID godoc
// @Summary     Get account by ID
// @Description Returns a single account with its beneficiaries
// @Tags        accounts
// @Produce     json
// @Param       id  path     int true "Account ID"
// @Success     200 {object} AccountResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/accounts/{id} [get]
func (accountController *AccountController) GetAccountByID(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	account, err := accountController.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAccountResponse(account))
}

// CreateAccount godoc
// @Summary     Create an account
// @Description Creates an account, optionally with initial beneficiaries
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateAccountRequest true "Account data"
// @Success     201     {object} AccountResponse
// @Failure     400     {object} handlers.ValidationErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/accounts [post]
func (accountController *AccountController) CreateAccount(c *gin.Context) {
	var request dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	account, err := accountController.accountService.CreateAccount(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewAccountResponse(account))
}

// UpdateAccount godoc
// @Summary     Update an account
// @Description Updates the account's number and name
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id      path     int                      true "Account ID"
// @Param       request body     dto.UpdateAccountRequest true "Account data"
// @Success     200     {object} AccountResponse
// @Failure     400     {object} handlers.ValidationErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/accounts/{id} [put]
func (accountController *AccountController) UpdateAccount(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	var request dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	account, err := accountController.accountService.UpdateAccount(c.Request.Context(), accountID, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAccountResponse(account))
}

// AddBeneficiary godoc
// @Summary     Add a beneficiary
// @Description Adds a beneficiary to the account
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id      path     int                       true "Account ID"
// @Param       request body     dto.AddBeneficiaryRequest true "Beneficiary data"
// @Success     201     {object} AccountResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/accounts/{id}/beneficiaries [post]
func (accountController *AccountController) AddBeneficiary(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	var request dto.AddBeneficiaryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	account, err := accountController.accountService.AddBeneficiary(c.Request.Context(), accountID, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewAccountResponse(account))
}

// RemoveBeneficiary godoc
// @Summary     Remove a beneficiary
// @Description Removes a beneficiary and spreads its allocation across the rest
// @Tags        accounts
// @Produce     json
// @Param       id   path     int    true "Account ID"
// @Param       name path     string true "Beneficiary name"
// @Success     200  {object} AccountResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Failure     404  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /api/v1/accounts/{id}/beneficiaries/{name} [delete]
func (accountController *AccountController) RemoveBeneficiary(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	account, err := accountController.accountService.RemoveBeneficiary(c.Request.Context(), accountID, c.Param("name"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAccountResponse(account))
}

// UpdateAllocations godoc
// @Summary     Update beneficiary allocations
// @Description Replaces allocation percentages for the named beneficiaries
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id      path     int                          true "Account ID"
// @Param       request body     dto.UpdateAllocationsRequest true "Allocations"
// @Success     200     {object} AccountResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/accounts/{id}/beneficiaries [patch]
func (accountController *AccountController) UpdateAllocations(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	var request dto.UpdateAllocationsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	account, err := accountController.accountService.UpdateAllocations(c.Request.Context(), accountID, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAccountResponse(account))
}

// MakeContribution godoc
// @Summary     Make a contribution
// @Description Distributes an amount across the account's beneficiaries
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id      path     int                     true "Account ID"
// @Param       request body     dto.ContributionRequest true "Contribution amount"
// @Success     201     {object} ContributionResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/accounts/{id}/contributions [post]
func (accountController *AccountController) MakeContribution(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	var request dto.ContributionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	contribution, err := accountController.accountService.MakeContribution(c.Request.Context(), accountID, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewContributionResponse(contribution))
}
