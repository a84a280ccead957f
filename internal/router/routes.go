package router

import (
	"github.com/changhyeonkim/member-directory/go-api-server/internal/config"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/contact"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/member"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/memberdata"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/meta"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/platform"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/token"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/siteconfig"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check, metrics)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", metrics.Handler())

	// repository
	memberDataRepository := member.NewMemberDataRepository()
	siteConfigRepository := siteconfig.NewSiteConfigRepository()
	contactSubmissionRepository := contact.NewContactSubmissionRepository()

	// shared services
	platformClient := platform.NewClient(cfg, token.NewJWTIssuer(cfg))

	// service
	memberService := member.NewMemberService(db.DB, memberDataRepository)
	syncService := member.NewSyncService(cfg, db.DB, memberDataRepository, memberdata.NewGenerator(memberService))
	siteConfigService := siteconfig.NewSiteConfigService(db.DB, siteConfigRepository)
	contactService := contact.NewContactService(db.DB, memberService, siteConfigService, platformClient, contactSubmissionRepository)

	// handler
	memberHandler := member.NewMemberHandler(memberService, syncService)
	contactHandler := contact.NewContactHandler(contactService)

	// API v1 routes
	memberV1 := router.Group("/api/v1/members")
	{
		memberV1.POST("/sync", memberHandler.SyncPage)
		memberV1.GET("/:memberId", memberHandler.GetMember)
		memberV1.POST("/:memberId/contact", contactHandler.Submit)
	}
}
