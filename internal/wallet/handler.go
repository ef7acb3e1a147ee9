package wallet

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/palapa-fun/rooms-backend/internal/pkg/middleware"
	"github.com/palapa-fun/rooms-backend/internal/pkg/reject"
	"github.com/palapa-fun/rooms-backend/internal/pkg/utils"
	"gorm.io/gorm"
)

type walletHandler struct {
	walletService walletService
}

type DepositRequest struct {
	Amount uint64 `json:"amount"`
}

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := walletHandler{
		walletService: walletService{db: db},
	}

	routes := rg.Group("/wallet")
	routes.GET("", middleware.VerifyAuthToken, handler.getWallet)
	routes.GET("/transfers", middleware.VerifyAuthToken, handler.getTransfers)
	routes.POST("/deposit", middleware.VerifyAuthToken, handler.deposit)
}

func (wh *walletHandler) getWallet(c *gin.Context) {
	wallet, err := wh.walletService.balance(utils.GetUserEmail(c))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

func (wh *walletHandler) getTransfers(c *gin.Context) {
	transfers, err := wh.walletService.transfers(utils.GetUserEmail(c))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, transfers)
}

func (wh *walletHandler) deposit(c *gin.Context) {
	body := DepositRequest{}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	wallet, err := wh.walletService.deposit(utils.GetUserEmail(c), body.Amount)
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, wallet)
}
