package repository

import (
	"github.com/TagBoard/tagboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleRepository 記事に関するデータベース操作を行うインターフェース
type ArticleRepository interface {
	Create(article *models.Article) error
	FindByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	List(page, limit int, search, tag string) ([]models.Article, int64, error)
}

// articleRepository ArticleRepositoryの実装
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository ArticleRepositoryを作成
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create 新しい記事を作成
// タグの関連付けはTagRepositoryで明示的に行うため、ここでは保存しない
func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Omit(clause.Associations).Create(article).Error
}

// FindByID IDで記事を検索
func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.Preload("Tags").First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Update 記事情報を更新
func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Omit(clause.Associations).Save(article).Error
}

// Delete 記事を削除
func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// List 記事一覧を取得
// tag を指定すると、そのタグが付いた記事のみを返す。
// 存在しないタグ名の場合は空の結果を返す (エラーにしない)。
// 並び順は新着順 (created_at DESC)。
func (r *articleRepository) List(page, limit int, search, tag string) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	offset := (page - 1) * limit

	// クエリビルダーを初期化
	query := r.db.Model(&models.Article{}).Preload("Tags")

	// 検索条件を適用
	if search != "" {
		query = query.Where("author LIKE ? OR content LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	// タグでフィルタリング
	if tag != "" {
		query = query.Joins("JOIN taggings ON articles.id = taggings.article_id").
			Joins("JOIN tags ON taggings.tag_id = tags.id").
			Where("tags.name = ?", tag)
	}

	// 合計数を取得
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 新着順でデータを取得
	if err := query.
		Order("articles.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}
