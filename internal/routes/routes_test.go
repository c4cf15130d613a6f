package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TagBoard/tagboard_backend/internal/config"
	"github.com/TagBoard/tagboard_backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// テスト用のルーターを組み立てる
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("テスト用データベースの作成に失敗しました: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("SQLDBインスタンス取得に失敗しました: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.SetupJoinTable(&models.Article{}, "Tags", &models.Tagging{}); err != nil {
		t.Fatalf("中間テーブルの設定に失敗しました: %v", err)
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Articles", &models.Tagging{}); err != nil {
		t.Fatalf("中間テーブルの設定に失敗しました: %v", err)
	}
	if err := db.AutoMigrate(&models.Tag{}, &models.Article{}, &models.Tagging{}); err != nil {
		t.Fatalf("マイグレーションに失敗しました: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Version: "test-build",
		},
		Tag: config.TagConfig{
			MaxNameLength: 50,
			SizeClasses:   []string{"tag-cloud-1", "tag-cloud-2", "tag-cloud-3", "tag-cloud-4"},
		},
	}

	return SetupRouter(cfg, db)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// 記事の作成からタグ検索までの流れをテストする
func TestArticleEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	// 作成
	w := doRequest(t, router, http.MethodPost, "/api/v1/articles",
		`{"author":"John","content":"hello","tags":"ruby, , Rails ,ruby"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("ステータスコード = %d, 期待値 201: %s", w.Code, w.Body.String())
	}

	var created models.Article
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("レスポンスの解析に失敗しました: %v", err)
	}
	if created.AllTags != "ruby, Rails" {
		t.Errorf("all_tags = %q, 期待値 %q", created.AllTags, "ruby, Rails")
	}

	// タグで検索
	w = doRequest(t, router, http.MethodGet, "/api/v1/articles?tag=ruby", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ステータスコード = %d, 期待値 200", w.Code)
	}
	var list struct {
		Articles []models.Article `json:"articles"`
		Total    int64            `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("レスポンスの解析に失敗しました: %v", err)
	}
	if list.Total != 1 || len(list.Articles) != 1 {
		t.Errorf("タグ検索の結果が不正です: %s", w.Body.String())
	}

	// 存在しないタグは空の一覧
	w = doRequest(t, router, http.MethodGet, "/api/v1/articles?tag=unknown", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ステータスコード = %d, 期待値 200", w.Code)
	}

	// 存在しない記事は404
	w = doRequest(t, router, http.MethodGet, "/api/v1/articles/999", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("ステータスコード = %d, 期待値 404", w.Code)
	}
}

// バリデーションエラーが400になることをテストする
func TestArticleCreateBadRequest(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/articles",
		`{"author":"","content":"hello","tags":""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("ステータスコード = %d, 期待値 400: %s", w.Code, w.Body.String())
	}
}

// タグクラウドエンドポイントをテストする
func TestTagCloudEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	// タグがなければ空配列
	w := doRequest(t, router, http.MethodGet, "/api/v1/tags/cloud", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ステータスコード = %d, 期待値 200", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("空のタグクラウド = %s, 期待値 []", w.Body.String())
	}

	doRequest(t, router, http.MethodPost, "/api/v1/articles",
		`{"author":"John","content":"hello","tags":"go"}`)

	w = doRequest(t, router, http.MethodGet, "/api/v1/tags/cloud", "")
	var entries []models.TagCloudEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("レスポンスの解析に失敗しました: %v", err)
	}
	if len(entries) != 1 || entries[0].SizeClass != "tag-cloud-4" {
		t.Errorf("予期しないタグクラウド: %s", w.Body.String())
	}
}

// ヘルスチェックをテストする
func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ステータスコード = %d, 期待値 200", w.Code)
	}

	var status struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("レスポンスの解析に失敗しました: %v", err)
	}
	if status.Status != "ok" {
		t.Errorf("status = %q, 期待値 %q", status.Status, "ok")
	}
	// バージョンは設定から渡される
	if status.Version != "test-build" {
		t.Errorf("version = %q, 期待値 %q", status.Version, "test-build")
	}
}
