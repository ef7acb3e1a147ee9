package room

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/palapa-fun/rooms-backend/internal/pkg/middleware"
	"github.com/palapa-fun/rooms-backend/internal/pkg/reject"
	"github.com/palapa-fun/rooms-backend/internal/pkg/utils"
	"github.com/palapa-fun/rooms-backend/internal/pkg/ws"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type roomHandler struct {
	roomService roomService
}

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := roomHandler{
		roomService: roomService{
			db:            db,
			notifier:      &eventNotifier{hub: ws.NewNotificationHub()},
			fees:          loadFeeSchedule(),
			baseline:      viper.GetUint64("CUSTODY_BASELINE_BALANCE"),
			serviceWallet: viper.GetString("SERVICE_WALLET_ADDRESS"),
		},
	}

	routes := rg.Group("/room")
	routes.POST("", middleware.VerifyAuthToken, handler.createRoom)
	routes.GET("", middleware.VerifyAuthToken, handler.getRooms)
	routes.GET("/:address", middleware.VerifyAuthToken, handler.getRoom)
	routes.POST("/:address/join", middleware.VerifyAuthToken, handler.joinRoom)
	routes.POST("/:address/winner", middleware.VerifyAuthToken, handler.announceWinner)
	routes.POST("/:address/cancel", middleware.VerifyAuthToken, handler.cancelRoom)
}

func (rh *roomHandler) createRoom(c *gin.Context) {
	body := CreateRoomRequest{}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	created, err := rh.roomService.createRoom(body, utils.GetUserEmail(c))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (rh *roomHandler) getRooms(c *gin.Context) {
	page, err := utils.NewPageRequest(c)
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	rooms, roomCount, err := rh.roomService.getRooms(page)
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	response := utils.NewPageResponse[RoomResponse]().
		WithItems(rooms).
		WithItemCount(*roomCount)

	nextToken := checkNextPageToken(page, *roomCount)
	if nextToken != nil {
		response.WithNextPageToken(*nextToken)
	}

	c.JSON(http.StatusOK, response.Build())
}

func (rh *roomHandler) getRoom(c *gin.Context) {
	room, err := rh.roomService.getRoom(c.Param("address"))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, room)
}

func (rh *roomHandler) joinRoom(c *gin.Context) {
	joined, err := rh.roomService.joinRoom(c.Param("address"), utils.GetUserEmail(c))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, joined)
}

func (rh *roomHandler) announceWinner(c *gin.Context) {
	body := AnnounceWinnerRequest{}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	finished, err := rh.roomService.announceWinner(c.Param("address"), body, utils.GetUserEmail(c))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, finished)
}

func (rh *roomHandler) cancelRoom(c *gin.Context) {
	cancelled, err := rh.roomService.cancelRoom(c.Param("address"), utils.GetUserEmail(c))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, cancelled)
}

func checkNextPageToken(currPage utils.PageRequest, roomCount int64) *int64 {
	if int(roomCount) > (currPage.Token+1)*currPage.Size {
		nextToken := int64(currPage.Token + 1)
		return &nextToken
	}
	return nil
}
