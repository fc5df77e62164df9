package wire

import (
	"Parchment/internal/admin"
	"Parchment/internal/api"
	"Parchment/internal/api/config"
	"Parchment/internal/api/handler"
	"Parchment/internal/job"
	"Parchment/internal/pkg/consts"
	"Parchment/internal/pkg/cron"
	"Parchment/internal/pkg/es"
	"Parchment/internal/pkg/kafka"
	"Parchment/internal/pkg/metrics"
	"Parchment/internal/pkg/minio"
	"Parchment/internal/pkg/mongo"
	"Parchment/internal/pkg/redis"
	"Parchment/internal/pkg/security"
	"Parchment/internal/repository"
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	// 基础设施
	contentCache := redis.NewContentCache(consts.ContentSlugCacheTTL)
	mediaQueue := redis.NewMediaQueue()
	hitBuffer := redis.NewHitBuffer()
	storage := minio.Storage{}
	recorder := metrics.NewRecorder()
	contentESRepo := es.NewContentRepo(es.Client, es.ContentIndex)
	adminLogRepo := mongo.NewAdminLogRepo(mongoDB)

	// 仓储
	userRepo := repository.NewUserRepo(db)
	contentRepo := repository.NewContentRepo(db)
	approvalRepo := repository.NewApprovalRepo(db)
	seoRepo := repository.NewSEODataRepo(db)
	mediaRepo := repository.NewMediaFileRepo(db)
	translationRepo := repository.NewTranslationRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)
	integrationRepo := repository.NewIntegrationRepo(db)
	securityLogRepo := repository.NewSecurityLogRepo(db)
	performanceRepo := repository.NewPerformanceRepo(db)
	adminRepo := repository.NewAdminRepo(db)

	// 服务
	userService := service.NewUserService(userRepo, security.NewPasswordHasher(cfg.Security.BcryptCost), contentCache, mediaQueue)
	contentService := service.NewContentService(contentRepo, userRepo, contentESRepo, contentCache, mediaQueue)
	approvalService := service.NewApprovalService(approvalRepo, contentRepo, userRepo)
	seoService := service.NewSEOService(seoRepo, contentRepo)
	mediaService := service.NewMediaService(mediaRepo, contentRepo, storage, mediaQueue)
	translationService := service.NewTranslationService(translationRepo, contentRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, contentRepo, hitBuffer, recorder)
	integrationService := service.NewIntegrationService(integrationRepo)
	securityLogService := service.NewSecurityLogService(securityLogRepo, userRepo)
	performanceService := service.NewPerformanceService(performanceRepo, contentRepo, recorder)
	adminService := service.NewAdminService(admin.BuildSite(), adminRepo)
	changeLogService := service.NewChangeLogService(adminLogRepo)

	handlers := &api.HandlersGroup{
		UserHandler:        handler.NewUserHandler(userService, changeLogService),
		ContentHandler:     handler.NewContentHandler(contentService, analyticsService, changeLogService),
		ApprovalHandler:    handler.NewApprovalHandler(approvalService, changeLogService),
		SEOHandler:         handler.NewSEOHandler(seoService, changeLogService),
		MediaHandler:       handler.NewMediaHandler(mediaService, changeLogService),
		TranslationHandler: handler.NewTranslationHandler(translationService, changeLogService),
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsService, changeLogService),
		IntegrationHandler: handler.NewIntegrationHandler(integrationService, changeLogService),
		SecurityLogHandler: handler.NewSecurityLogHandler(securityLogService, changeLogService),
		PerformanceHandler: handler.NewPerformanceHandler(performanceService, changeLogService),
		AdminHandler:       handler.NewAdminHandler(adminService, changeLogService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		cfg.Cron,
		job.NewAnalyticsFlushJob(analyticsService),
		job.NewMediaCleanupJob(mediaService),
	)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, contentESRepo)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
