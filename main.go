package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"pizza-backend/internal/config"
	"pizza-backend/internal/controllers"
	"pizza-backend/internal/database"
	"pizza-backend/internal/httperr"
	"pizza-backend/internal/middleware"
	"pizza-backend/internal/services"
	"pizza-backend/internal/store"
	"pizza-backend/internal/validation"
)

func main() {
	cfg := config.Load()
	setUpLogger(cfg)

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.WithError(err).Error("mongo disconnect")
		}
	}()

	db := client.Database(cfg.DBName)
	log.Infof("MongoDB connected to %s", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.WithError(err).Warn("user index bootstrap")
	}
	if err := database.EnsureUserResetTokenIndex(db); err != nil {
		log.WithError(err).Warn("user reset token index bootstrap")
	}

	pizzaStore := store.NewPizzaStore(db)
	orderStore := store.NewOrderStore(db)
	userStore := store.NewUserStore(db)

	pizzaService := services.NewPizzaService(pizzaStore)
	orderService := services.NewOrderService(orderStore, pizzaStore)
	userService := services.NewUserService(userStore)
	authService := services.NewAuthService(userStore, userService, cfg.JWTSecret)

	router := setupRouter(cfg,
		controllers.NewOrderController(orderService),
		controllers.NewPizzaController(pizzaService),
		controllers.NewUserController(userService),
		controllers.NewAuthController(authService),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Infof("Starting server on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}

// setUpLogger configures logrus with a JSON formatter and a level driven
// by the run mode.
func setUpLogger(cfg config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	switch cfg.AppEnv {
	case config.EnvDevelopment:
		log.SetLevel(log.DebugLevel)
	case config.EnvProduction:
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func setupRouter(
	cfg config.Config,
	orderCtl controllers.OrderController,
	pizzaCtl controllers.PizzaController,
	userCtl controllers.UserController,
	authCtl controllers.AuthController,
) *gin.Engine {
	switch cfg.AppEnv {
	case config.EnvProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.EnvTest:
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(httperr.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: cfg.CORSOrigin != "*",
	}))
	r.Use(httperr.Renderer(cfg.IsDevelopment()))
	r.NoRoute(httperr.NoRoute())

	api := r.Group("/api", middleware.CurrentUser(cfg.JWTSecret))

	auth := api.Group("/auth")
	{
		auth.POST("/sign-up", validation.Validate(validation.SignUp...), authCtl.SignUp)
		auth.POST("/sign-in", validation.Validate(validation.SignIn...), authCtl.SignIn)
		auth.GET("/sign-out", authCtl.SignOut)
		auth.POST("/reset-password", validation.Validate(validation.ResetPassword...), authCtl.ResetPassword)
		auth.POST("/reset-password/:token", validation.Validate(validation.ResetPasswordByToken...), authCtl.ResetPasswordByToken)
	}

	users := api.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.POST("", validation.Validate(validation.CreateUser...), userCtl.Create)
		users.GET("", userCtl.GetAll)
		users.GET("/me", userCtl.GetMe)
		users.GET("/:id", validation.Validate(validation.GetUserByID...), userCtl.GetByID)
		users.PATCH("/me/email", validation.Validate(validation.UpdateCurrentUserEmail...), userCtl.UpdateMyEmail)
		users.PATCH("/me/password", validation.Validate(validation.UpdateCurrentUserPassword...), userCtl.UpdateMyPassword)
		users.PATCH("/:id/email", validation.Validate(validation.UpdateUserEmailByID...), userCtl.UpdateEmailByID)
		users.PATCH("/:id/password", validation.Validate(validation.UpdateUserPasswordByID...), userCtl.UpdatePasswordByID)
		users.DELETE("/:id", validation.Validate(validation.DeleteUser...), userCtl.Delete)
	}

	pizzas := api.Group("/pizzas")
	{
		pizzas.GET("", pizzaCtl.GetAll)
		pizzas.GET("/:id", validation.Validate(validation.GetPizzaByID...), pizzaCtl.GetByID)
		pizzas.POST("", middleware.RequireAuth(), validation.Validate(validation.CreatePizza...), pizzaCtl.Create)
		pizzas.PUT("/:id", middleware.RequireAuth(), validation.Validate(validation.UpdatePizza...), pizzaCtl.Update)
		pizzas.DELETE("/:id", middleware.RequireAuth(), validation.Validate(validation.DeletePizza...), pizzaCtl.Delete)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", validation.Validate(validation.CreateOrder...), orderCtl.Create)
		orders.GET("", middleware.RequireAuth(), orderCtl.GetAll)
		orders.GET("/:id", validation.Validate(validation.GetOrderByID...), orderCtl.GetByID)
		orders.PUT("/:id", middleware.RequireAuth(), validation.Validate(validation.UpdateOrder...), orderCtl.Update)
		orders.PATCH("/:id/status", middleware.RequireAuth(), validation.Validate(validation.UpdateOrderedPizzaStatus...), orderCtl.UpdatePizzaStatus)
		orders.DELETE("/:id", middleware.RequireAuth(), validation.Validate(validation.DeleteOrder...), orderCtl.Delete)
	}

	return r
}
