package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/TagBoard/tagboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository タグに関するデータベース操作を行うインターフェース
type TagRepository interface {
	FindOrCreate(name string) (*models.Tag, error)
	List(search string, limit int) ([]models.Tag, error)
	FindByID(id uint) (*models.Tag, error)
	FindByName(name string) (*models.Tag, error)
	ListWithCounts() ([]models.TagCount, error)
	AttachTagsToArticle(articleID uint, tagIDs []uint) error
	DetachTagsFromArticle(articleID uint) error
	GetTagsForArticle(articleID uint) ([]models.Tag, error)
}

// tagRepository TagRepositoryの実装
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository TagRepositoryを作成
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// FindOrCreate タグを検索または作成
// name の一意インデックスを前提に INSERT を衝突安全に行う。
// 同名タグが同時に作成されても行は1つしかできない。
func (r *tagRepository) FindOrCreate(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("タグ名は空にできません")
	}

	tag := models.Tag{Name: name}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag).Error; err != nil {
		return nil, err
	}

	// 既存行と衝突した場合はIDが入らないので取り直す
	if tag.ID == 0 {
		if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, err
		}
	}

	return &tag, nil
}

// List タグ一覧を取得
func (r *tagRepository) List(search string, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	query := r.db.Model(&models.Tag{})

	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.
		Limit(limit).
		Order("name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}

	return tags, nil
}

// FindByID IDでタグを検索
func (r *tagRepository) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByName 名前でタグを検索
func (r *tagRepository) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListWithCounts 全タグを利用数 (関連する記事数) 付きで取得
// 利用数0のタグも含む。名前順。
func (r *tagRepository) ListWithCounts() ([]models.TagCount, error) {
	var rows []struct {
		ID        uint
		Name      string
		CreatedAt time.Time
		Count     int64
	}

	if err := r.db.Model(&models.Tag{}).
		Select("tags.id, tags.name, tags.created_at, COUNT(taggings.article_id) AS count").
		Joins("LEFT JOIN taggings ON taggings.tag_id = tags.id").
		Group("tags.id, tags.name, tags.created_at").
		Order("tags.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make([]models.TagCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, models.TagCount{
			Tag: models.Tag{
				ID:        row.ID,
				Name:      row.Name,
				CreatedAt: row.CreatedAt,
			},
			Count: row.Count,
		})
	}

	return counts, nil
}

// AttachTagsToArticle 記事にタグを関連付け
// 既存の関連はすべて置き換える (マージしない)。
// created_at は登録順の読み出しに使うため、ミリ秒精度のデータベース
// (MySQLのdatetime(3)など) でも単調増加になる値を明示的に割り当てる。
func (r *tagRepository) AttachTagsToArticle(articleID uint, tagIDs []uint) error {
	// 既存のタグをすべて解除
	if err := r.DetachTagsFromArticle(articleID); err != nil {
		return err
	}

	// 新しいタグを追加
	base := time.Now()
	for i, tagID := range tagIDs {
		ts := base.Add(time.Duration(i) * time.Millisecond)
		tagging := models.Tagging{
			ArticleID: articleID,
			TagID:     tagID,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
		if err := r.db.Create(&tagging).Error; err != nil {
			return err
		}
	}

	return nil
}

// DetachTagsFromArticle 記事からすべてのタグの関連付けを解除
func (r *tagRepository) DetachTagsFromArticle(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&models.Tagging{}).Error
}

// GetTagsForArticle 記事に関連付けられたタグを登録順に取得
func (r *tagRepository) GetTagsForArticle(articleID uint) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Model(&models.Tag{}).
		Joins("JOIN taggings ON tags.id = taggings.tag_id").
		Where("taggings.article_id = ?", articleID).
		Order("taggings.created_at ASC, taggings.tag_id ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
