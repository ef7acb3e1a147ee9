package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/palapa-fun/rooms-backend/internal/pkg/middleware"
	"github.com/palapa-fun/rooms-backend/internal/pkg/reject"
	"github.com/palapa-fun/rooms-backend/internal/pkg/utils"
	"gorm.io/gorm"
)

type registrationHandler struct {
	registrationService registrationService
}

type RegisterRequest struct {
	Username string `json:"username"`
}

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := registrationHandler{
		registrationService: registrationService{db: db},
	}

	routes := rg.Group("/registration")
	routes.POST("", middleware.VerifyAuthToken, handler.register)
}

func (rh *registrationHandler) register(c *gin.Context) {
	body := RegisterRequest{}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	user, err := rh.registrationService.register(body.Username, utils.GetUserEmail(c), utils.GetUserExternalId(c))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusCreated, user)
}
