package api

import "Parchment/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler        *handler.UserHandler
	ContentHandler     *handler.ContentHandler
	ApprovalHandler    *handler.ApprovalHandler
	SEOHandler         *handler.SEOHandler
	MediaHandler       *handler.MediaHandler
	TranslationHandler *handler.TranslationHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	IntegrationHandler *handler.IntegrationHandler
	SecurityLogHandler *handler.SecurityLogHandler
	PerformanceHandler *handler.PerformanceHandler
	AdminHandler       *handler.AdminHandler
}
