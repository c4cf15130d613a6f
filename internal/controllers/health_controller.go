package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController ヘルスチェックに関するコントローラー
type HealthController struct {
	startTime time.Time
	version   string
}

// NewHealthController HealthControllerを作成
// version は設定から渡されるアプリケーションバージョン
func NewHealthController(version string) *HealthController {
	if version == "" {
		version = "dev"
	}
	return &HealthController{
		startTime: time.Now(),
		version:   version,
	}
}

// HealthStatus ヘルスステータスレスポンス
type HealthStatus struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Check ヘルスチェック
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &HealthStatus{
		Status:    "ok",
		Uptime:    time.Since(c.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   c.version,
	})
}
