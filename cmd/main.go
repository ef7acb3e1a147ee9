package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/palapa-fun/rooms-backend/internal/auth"
	"github.com/palapa-fun/rooms-backend/internal/pkg/firebase"
	"github.com/palapa-fun/rooms-backend/internal/pkg/ledger"
	"github.com/palapa-fun/rooms-backend/internal/pkg/middleware"
	"github.com/palapa-fun/rooms-backend/internal/pkg/model"
	"github.com/palapa-fun/rooms-backend/internal/pkg/pubsub"
	"github.com/palapa-fun/rooms-backend/internal/profile"
	"github.com/palapa-fun/rooms-backend/internal/registration"
	"github.com/palapa-fun/rooms-backend/internal/room"
	"github.com/palapa-fun/rooms-backend/internal/wallet"
	"github.com/palapa-fun/rooms-backend/internal/ws"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	setupViper()
	setupZerolog()
	pubsub.InitPubSub()
	db := setupDb()
	setupServiceWallet(db)
	apiRouter := setupApiRouter(db)

	defer func() { pubsub.CloseClient() }()

	firebase.InitFirebaseSdk()

	port := viper.GetString("PORT")
	server := &http.Server{
		Addr:         port,
		Handler:      apiRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	server.ListenAndServe()
}

func setupDb() *gorm.DB {
	dbUrl := viper.GetString("DB_URL")

	db, err := gorm.Open(postgres.Open(dbUrl), &gorm.Config{})

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.LedgerAccount{},
		&model.LedgerTransfer{},
		&model.Room{},
		&model.RoomPlayer{},
	)
	if migrateErr != nil {
		log.Fatal().Err(migrateErr).Msg("Failed to migrate database schema")
	}

	sqlDb, _ := db.DB()

	sqlDb.SetMaxOpenConns(50)
	sqlDb.SetConnMaxLifetime(time.Minute * 10)

	return db
}

// setupServiceWallet provisions the fixed service fee account so
// settlements always have a recipient for the service cut.
func setupServiceWallet(db *gorm.DB) {
	address := viper.GetString("SERVICE_WALLET_ADDRESS")
	if address == "" {
		log.Fatal().Msg("SERVICE_WALLET_ADDRESS is not configured")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := ledger.CreateAccount(tx, address, false)
		if err == ledger.ErrAccountExists {
			return nil
		}
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to provision service wallet account")
	}
}

func setupApiRouter(db *gorm.DB) *gin.Engine {
	apiRouter := gin.Default()
	routerGroup := apiRouter.Group("/palapa-api")

	middleware.RegisterGlobalMiddleware(apiRouter)

	ws.RegisterRoutes(routerGroup)
	auth.RegisterRoutes(routerGroup, db)
	registration.RegisterRoutes(routerGroup, db)
	profile.RegisterRoutes(routerGroup, db)
	wallet.RegisterRoutes(routerGroup, db)
	room.RegisterRoutes(routerGroup, db)

	return apiRouter
}

func setupViper() {
	viper.AutomaticEnv()
	viper.SetConfigFile("./.env")
	viper.ReadInConfig()
}

func setupZerolog() {
	zerolog.LevelFieldName = "severity"
	zerolog.TimestampFieldName = "time"
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
