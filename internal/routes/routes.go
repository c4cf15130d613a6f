package routes

import (
	"github.com/TagBoard/tagboard_backend/internal/config"
	"github.com/TagBoard/tagboard_backend/internal/controllers"
	"github.com/TagBoard/tagboard_backend/internal/middlewares"
	"github.com/TagBoard/tagboard_backend/internal/repository"
	"github.com/TagBoard/tagboard_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	articleRepo := repository.NewArticleRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// サービスを作成
	articleService := services.NewArticleService(db, articleRepo, tagRepo, cfg)
	tagService := services.NewTagService(tagRepo, cfg)

	// コントローラーを作成
	articleController := controllers.NewArticleController(articleService)
	tagController := controllers.NewTagController(tagService)
	healthController := controllers.NewHealthController(cfg.Server.Version)

	// APIグループを作成
	api := r.Group("/api/v1")
	{
		// ヘルスチェックルート
		api.GET("/health", healthController.Check)

		// 記事ルート
		articles := api.Group("/articles")
		{
			articles.GET("", articleController.List)
			articles.GET("/:id", articleController.GetByID)
			articles.POST("", articleController.Create)
			articles.PUT("/:id", articleController.Update)
			articles.DELETE("/:id", articleController.Delete)
		}

		// タグルート
		tags := api.Group("/tags")
		{
			tags.GET("", tagController.List)
			tags.GET("/cloud", tagController.Cloud)
		}
	}

	return r
}
