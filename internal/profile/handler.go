package profile

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/palapa-fun/rooms-backend/internal/pkg/middleware"
	"github.com/palapa-fun/rooms-backend/internal/pkg/reject"
	"github.com/palapa-fun/rooms-backend/internal/pkg/utils"
	"gorm.io/gorm"
)

type profileHandler struct {
	profile *profileService
}

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := profileHandler{
		profile: &profileService{db: db},
	}

	routes := rg.Group("/profile")
	routes.GET("/me", middleware.VerifyAuthToken, handler.getOwnProfile)
	routes.GET("/:id", middleware.VerifyAuthToken, handler.getProfileById)
}

func (h profileHandler) getOwnProfile(c *gin.Context) {
	profile, err := h.profile.findByEmail(utils.GetUserEmail(c))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h profileHandler) getProfileById(c *gin.Context) {
	id, parseErr := strconv.ParseUint(c.Param("id"), 0, 64)
	if parseErr != nil {
		c.JSON(http.StatusBadRequest, reject.RequestParamsProblem())
		return
	}

	profile, err := h.profile.findById(id)
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, profile)
}
