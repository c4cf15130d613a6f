package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/TagBoard/tagboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ArticleController 記事に関するコントローラー
type ArticleController struct {
	articleService services.ArticleService
}

// NewArticleController ArticleControllerを作成
func NewArticleController(articleService services.ArticleService) *ArticleController {
	return &ArticleController{
		articleService: articleService,
	}
}

// articleInput 記事の作成・更新リクエスト
// Tags はカンマ区切りの生のタグ文字列
type articleInput struct {
	Author  string `json:"author" form:"author"`
	Content string `json:"content" form:"content"`
	Tags    string `json:"tags" form:"tags"`
}

// List 記事一覧を取得
func (c *ArticleController) List(ctx *gin.Context) {
	// クエリパラメータを取得
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	search := ctx.Query("search")
	tag := ctx.Query("tag")

	articles, total, pages, err := c.articleService.List(page, limit, search, tag)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    total,
		"pages":    pages,
		"page":     page,
	})
}

// GetByID 記事を1件取得
func (c *ArticleController) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	article, err := c.articleService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// Create 新しい記事を作成
func (c *ArticleController) Create(ctx *gin.Context) {
	var input articleInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの解析に失敗しました"})
		return
	}

	article, err := c.articleService.Create(input.Author, input.Content, input.Tags)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, article)
}

// Update 記事を更新
func (c *ArticleController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	var input articleInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの解析に失敗しました"})
		return
	}

	article, err := c.articleService.Update(id, input.Author, input.Content, input.Tags)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrArticleNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// Delete 記事を削除
func (c *ArticleController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	if err := c.articleService.Delete(id); err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseID パスパラメータのIDを解析
func parseID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
