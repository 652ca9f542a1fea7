package container

import (
	"fmt"
	"log"
	"time"

	"aacboard-backend/internal/config"
	"aacboard-backend/internal/infrastructure/database"
	"aacboard-backend/pkg/jwt"

	"aacboard-backend/internal/domains/asset"
	assetHandler "aacboard-backend/internal/domains/asset/handler"
	assetRepo "aacboard-backend/internal/domains/asset/repository"
	assetService "aacboard-backend/internal/domains/asset/service"
	"aacboard-backend/internal/domains/board"
	boardHandler "aacboard-backend/internal/domains/board/handler"
	boardRepo "aacboard-backend/internal/domains/board/repository"
	boardService "aacboard-backend/internal/domains/board/service"
	"aacboard-backend/internal/domains/navigation"
	navigationHandler "aacboard-backend/internal/domains/navigation/handler"
	navigationService "aacboard-backend/internal/domains/navigation/service"
	"aacboard-backend/internal/domains/session"
	sessionHandler "aacboard-backend/internal/domains/session/handler"
	sessionService "aacboard-backend/internal/domains/session/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the whole dependency graph. Everything in it is a
// singleton for the process lifetime.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.SQLiteDB
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	BoardRepo board.Repository
	AssetRepo asset.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	BoardService      board.Service
	AssetService      asset.Service
	NavigationService navigation.Service
	SessionService    session.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	BoardHandler      *boardHandler.BoardHandler
	AssetHandler      *assetHandler.AssetHandler
	NavigationHandler *navigationHandler.NavigationHandler
	SessionHandler    *sessionHandler.SessionHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the dependency graph in layer order:
// config, then infrastructure, then repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: OPEN STORAGE
	// ========================================
	log.Println("🗄️  Opening SQLite store...")

	db, err := database.NewSQLiteDB(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	c.DB = db
	log.Printf("✅ Storage ready (%s)", cfg.Storage.Path)

	c.JWTManager = jwt.NewManager(cfg.Session.Secret)

	// ========================================
	// STEP 3: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()

	// ========================================
	// STEP 4: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	// ========================================
	// STEP 5: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.BoardRepo = boardRepo.NewBoardRepository(c.DB.DB)
	c.AssetRepo = assetRepo.NewAssetRepository(c.DB.DB)
}

func (c *Container) initServices() error {
	// The board service loads state, or seeds the default board on a
	// fresh database, before anything else depends on it.
	svc, err := boardService.NewBoardService(c.BoardRepo, c.Config.Session.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to init board service: %w", err)
	}
	c.BoardService = svc

	c.AssetService = assetService.NewAssetService(c.AssetRepo)
	c.NavigationService = navigationService.NewNavigationService(c.BoardService, c.Config.Board.DefaultBackground)
	c.SessionService = sessionService.NewSessionService(
		c.BoardService,
		c.JWTManager,
		time.Duration(c.Config.Session.TTLSeconds)*time.Second,
	)
	return nil
}

func (c *Container) initHandlers() {
	c.BoardHandler = boardHandler.NewBoardHandler(c.BoardService)
	c.AssetHandler = assetHandler.NewAssetHandler(c.AssetService)
	c.NavigationHandler = navigationHandler.NewNavigationHandler(c.NavigationService)
	c.SessionHandler = sessionHandler.NewSessionHandler(c.SessionService)
}

// Cleanup releases resources on shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("⚠️  Failed to close storage: %v", err)
		} else {
			log.Println("✅ Storage closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
