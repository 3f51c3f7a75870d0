package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	backupApp "keybuddy/internal/application/backup"
	customerApp "keybuddy/internal/application/customer"
	documentApp "keybuddy/internal/application/document"
	keysystemApp "keybuddy/internal/application/keysystem"
	orderApp "keybuddy/internal/application/order"
	permissionApp "keybuddy/internal/application/permission"
	settingApp "keybuddy/internal/application/setting"
	userApp "keybuddy/internal/application/user"
	userlogApp "keybuddy/internal/application/userlog"
	"keybuddy/internal/i18n"
	"keybuddy/internal/infrastructure/auth"
	backupInfra "keybuddy/internal/infrastructure/backup"
	"keybuddy/internal/infrastructure/config"
	"keybuddy/internal/infrastructure/crypto"
	"keybuddy/internal/infrastructure/database"
	"keybuddy/internal/infrastructure/email"
	"keybuddy/internal/infrastructure/migration"
	permissionInfra "keybuddy/internal/infrastructure/permission"
	"keybuddy/internal/infrastructure/persistence/migrations"
	"keybuddy/internal/infrastructure/persistence/seeds"
	"keybuddy/internal/infrastructure/repository"
	"keybuddy/internal/infrastructure/scheduler"
	"keybuddy/internal/infrastructure/settings"
	"keybuddy/internal/infrastructure/token"
	httpRouter "keybuddy/internal/interfaces/http"
	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the KeyBuddy HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto-migrate", autoMigrate)

	if err := i18n.InitTranslator(cfg.I18n.Dir, cfg.I18n.DefaultLanguage); err != nil {
		log.Warnw("failed to load translations, message IDs will be used", "error", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	db := database.Get()

	if err := handleMigrations(env, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	if err := seeds.SeedKeyCatalogs(db); err != nil {
		return fmt.Errorf("failed to seed key catalogs: %w", err)
	}
	if cfg.Auth.ProvisionDefaultAdmin {
		if err := seeds.SeedDefaultAdmin(db, hasher, log); err != nil {
			return fmt.Errorf("failed to seed default admin: %w", err)
		}
	}

	salt, err := crypto.LoadOrCreateSalt(cfg.Database.SaltPath())
	if err != nil {
		return fmt.Errorf("failed to load encryption salt: %w", err)
	}
	codec, err := crypto.NewCodec(crypto.DeriveKey(cfg.Database.MasterPassword, salt))
	if err != nil {
		return fmt.Errorf("failed to build document cipher: %w", err)
	}

	userRepo := repository.NewUserRepository(db, log)
	customerRepo := repository.NewCustomerRepository(db, log)
	keySystemRepo := repository.NewKeySystemRepository(db, log)
	catalogRepo := repository.NewKeyCatalogRepository(db, log)
	orderRepo := repository.NewOrderRepository(db, log)
	documentRepo := repository.NewDocumentRepository(db, log)
	grantRepo := repository.NewPermissionRepository(db, log)
	logRepo := repository.NewUserLogRepository(db, log)

	enforcer, err := permissionInfra.NewEnforcer(db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := permissionInfra.NewSync(userRepo, grantRepo, enforcer, log).Run(cmd.Context()); err != nil {
		return fmt.Errorf("failed to sync permission policies: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	totpService := auth.NewTOTPService()
	tokenGenerator := token.NewTokenGenerator()
	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	settingStore, err := settings.NewFileStore(constants.SettingsFile, log)
	if err != nil {
		return fmt.Errorf("failed to load application settings: %w", err)
	}

	backupEngine := backupInfra.NewService(cfg.Database, cfg.Backup, log)

	userService := userApp.NewService(userRepo, grantRepo, logRepo, enforcer,
		hasher, jwtService, totpService, tokenGenerator, emailService, cfg.Auth.Token, log)
	customerService := customerApp.NewService(customerRepo, log)
	keySystemService := keysystemApp.NewService(keySystemRepo, catalogRepo, customerRepo, log)
	orderService := orderApp.NewService(orderRepo, keySystemRepo, logRepo, log)
	documentService := documentApp.NewService(documentRepo, codec, log)
	permissionService := permissionApp.NewService(grantRepo, userRepo, enforcer, log)
	settingService := settingApp.NewService(settingStore, log)
	userlogService := userlogApp.NewService(logRepo, log)
	backupService := backupApp.NewService(backupEngine, database.Handle{}, logRepo, userRepo, settingService, emailService, log)

	schedulerManager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := schedulerManager.RegisterBackupJob(backupApp.NewScheduledJob(backupEngine, settingService, log)); err != nil {
		return fmt.Errorf("failed to register backup job: %w", err)
	}
	if err := schedulerManager.RegisterBillingJob(keysystemApp.NewRevertExpiredJob(keySystemRepo, log)); err != nil {
		return fmt.Errorf("failed to register billing job: %w", err)
	}

	// The scheduler stays idle until someone actually logs in, so an
	// unattended install does not churn backups.
	var startOnce sync.Once
	onLogin := func() {
		startOnce.Do(schedulerManager.Start)
	}
	defer schedulerManager.Stop()

	authMW := middleware.NewAuthMiddleware(jwtService, log)
	permMW := middleware.NewPermissionMiddleware(permissionService, log)

	router := httpRouter.NewRouter(httpRouter.Dependencies{
		ServerConfig:         cfg.Server,
		AuthHandler:          handlers.NewAuthHandler(userService, userlogService, cfg.Auth.Cookie, cfg.Auth.JWT, onLogin, log),
		UserHandler:          handlers.NewUserHandler(userService),
		CustomerHandler:      handlers.NewCustomerHandler(customerService, keySystemService),
		KeySystemHandler:     handlers.NewKeySystemHandler(keySystemService, orderService),
		OrderHandler:         handlers.NewOrderHandler(orderService),
		DocumentHandler:      handlers.NewDocumentHandler(documentService),
		PermissionHandler:    handlers.NewPermissionHandler(permissionService),
		BackupHandler:        handlers.NewBackupHandler(backupService),
		SettingHandler:       handlers.NewSettingHandler(settingService),
		UserLogHandler:       handlers.NewUserLogHandler(userlogService),
		VersionHandler:       handlers.NewVersionHandler(),
		AuthMiddleware:       authMW,
		PermissionMiddleware: permMW,
		Logger:               log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}

func handleMigrations(environment string, log logger.Interface) error {
	if skipMigrationCheck {
		log.Info("skipping migration check")
		return nil
	}

	db := database.Get()

	if autoMigrate || environment == "development" {
		if environment == "production" {
			log.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}

		manager := migration.NewManager(environment)
		if err := manager.Migrate(db, migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		if err := migrations.BackfillOrderKeyResponsible(db); err != nil {
			return fmt.Errorf("key responsible backfill failed: %w", err)
		}
		if err := migrations.BackfillSequenceNumbers(db); err != nil {
			return fmt.Errorf("sequence number backfill failed: %w", err)
		}

		log.Info("migrations completed")
		return nil
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		log.Warnw("failed to resolve migration scripts path", "error", err)
		return nil
	}

	strategy := migration.NewGooseStrategy(scriptsPath)
	if gooseStrategy, ok := strategy.(*migration.GooseStrategy); ok {
		version, err := gooseStrategy.GetVersion(db)
		if err != nil {
			log.Warnw("failed to check migration status", "error", err)
		} else {
			log.Infow("current migration version", "version", version)
		}
	}

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
