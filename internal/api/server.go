package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eventdesk/eventdesk/docs"
	v1 "github.com/eventdesk/eventdesk/internal/api/handler/v1"
	"github.com/eventdesk/eventdesk/internal/api/middleware"
	"github.com/eventdesk/eventdesk/internal/config"
	"github.com/eventdesk/eventdesk/internal/repository"
	"github.com/eventdesk/eventdesk/internal/repository/dao"
	"github.com/eventdesk/eventdesk/internal/service"
	"github.com/eventdesk/eventdesk/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, store *storage.Store) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	eventDAO, err := dao.NewEventDAO(store)
	if err != nil {
		return nil, fmt.Errorf("api.NewServer -> dao.NewEventDAO -> %w", err)
	}

	ticketDAO, err := dao.NewTicketDAO(store, time.Now)
	if err != nil {
		return nil, fmt.Errorf("api.NewServer -> dao.NewTicketDAO -> %w", err)
	}

	userDAO, err := dao.NewUserDAO(store)
	if err != nil {
		return nil, fmt.Errorf("api.NewServer -> dao.NewUserDAO -> %w", err)
	}

	rosterDAO, err := dao.NewRosterDAO(store)
	if err != nil {
		return nil, fmt.Errorf("api.NewServer -> dao.NewRosterDAO -> %w", err)
	}

	eventRepo := repository.NewEventRepository(eventDAO)
	userRepo := repository.NewUserRepository(userDAO)

	authHandler := s.initAuthHandler(store, userRepo)
	eventHandler := v1.NewEventHandler(service.NewEventService(eventRepo))
	ticketHandler := v1.NewTicketHandler(service.NewTicketService(repository.NewTicketRepository(ticketDAO)))
	rosterHandler := v1.NewRosterHandler(service.NewRosterService(repository.NewRosterRepository(rosterDAO), eventRepo))
	userHandler := v1.NewUserHandler(service.NewUserService(userRepo))

	s.MountHandlers(authHandler, eventHandler, ticketHandler, rosterHandler, userHandler)

	return s, nil
}

func (s *Server) initAuthHandler(store *storage.Store, users *repository.UserRepository) *v1.AuthHandler {
	accountDAO := dao.NewAccountDAO(store)
	sessionDAO := dao.NewSessionDAO(store)
	repo := repository.NewAuthRepository(accountDAO, sessionDAO)
	svc := service.NewAuthService(repo, users)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	eventHandler *v1.EventHandler,
	ticketHandler *v1.TicketHandler,
	rosterHandler *v1.RosterHandler,
	userHandler *v1.UserHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/register", authHandler.HandleRegister)
		auth.POST("/auth/login", authHandler.HandleLogin)
		auth.POST("/auth/logout", authHandler.HandleLogout)
		auth.GET("/auth/me", authHandler.HandleMe)
	}

	events := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		events.GET("/events", eventHandler.HandleListEvents)
		events.POST("/events", eventHandler.HandleCreateEvent)
		events.GET("/events/:eventID", eventHandler.HandleGetEvent)
		events.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		events.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		events.GET("/events/:eventID/tickets", ticketHandler.HandleListEventTickets)
		events.GET("/events/:eventID/participants", rosterHandler.HandleListParticipants)
		events.POST("/events/:eventID/participants", rosterHandler.HandleAddParticipant)
		events.DELETE("/events/:eventID/participants", rosterHandler.HandleRemoveParticipant)
		events.GET("/events/:eventID/organizers", rosterHandler.HandleListOrganizers)
		events.POST("/events/:eventID/organizers", rosterHandler.HandleAddOrganizer)
		events.DELETE("/events/:eventID/organizers/:username", rosterHandler.HandleRemoveOrganizer)
	}

	tickets := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		tickets.GET("/tickets", ticketHandler.HandleListTickets)
		tickets.POST("/tickets", ticketHandler.HandleCreateTicket)
		tickets.GET("/tickets/:ticketID", ticketHandler.HandleGetTicket)
		tickets.PUT("/tickets/:ticketID", ticketHandler.HandleUpdateTicket)
		tickets.DELETE("/tickets/:ticketID", ticketHandler.HandleDeleteTicket)
	}

	users := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		users.GET("/users", userHandler.HandleListUsers)
		users.GET("/users/:username", userHandler.HandleGetUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "EventDesk API"
	docs.SwaggerInfo.Description = "Entity store and admin API for event management."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
