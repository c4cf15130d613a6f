package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/TagBoard/tagboard_backend/internal/config"
	"github.com/TagBoard/tagboard_backend/internal/models"
	"github.com/TagBoard/tagboard_backend/internal/repository"
	"github.com/TagBoard/tagboard_backend/internal/utils"

	"gorm.io/gorm"
)

// ErrArticleNotFound 記事が存在しない
var ErrArticleNotFound = errors.New("記事が見つかりません")

// ValidationError 入力値のバリデーションエラー
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ArticleService 記事に関するサービスインターフェース
type ArticleService interface {
	Create(author, content, tagString string) (*models.Article, error)
	GetByID(id uint) (*models.Article, error)
	Update(id uint, author, content, tagString string) (*models.Article, error)
	Delete(id uint) error
	List(page, limit int, search, tag string) ([]models.Article, int64, int, error)
}

// articleService ArticleServiceの実装
type articleService struct {
	db          *gorm.DB
	articleRepo repository.ArticleRepository
	tagRepo     repository.TagRepository
	config      *config.Config
}

// NewArticleService ArticleServiceを作成
func NewArticleService(
	db *gorm.DB,
	articleRepo repository.ArticleRepository,
	tagRepo repository.TagRepository,
	cfg *config.Config) ArticleService {
	return &articleService{
		db:          db,
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		config:      cfg,
	}
}

// Create 新しい記事を作成
// tagString はカンマ区切りの生のタグ文字列。正規化してタグを解決し、
// 記事の保存とタグの関連付けを1つのトランザクションで行う。
func (s *articleService) Create(author, content, tagString string) (*models.Article, error) {
	if author == "" {
		return nil, &ValidationError{Message: "著者名は必須です"}
	}
	if content == "" {
		return nil, &ValidationError{Message: "本文は必須です"}
	}

	tagNames, err := s.parseAndValidateTags(tagString)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Author:  author,
		Content: content,
	}

	// 記事の保存とタグの関連付けをまとめてコミットする
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		articleRepo := repository.NewArticleRepository(tx)
		tagRepo := repository.NewTagRepository(tx)

		if err := articleRepo.Create(article); err != nil {
			return err
		}
		return s.assignTags(tagRepo, article.ID, tagNames)
	}); err != nil {
		return nil, err
	}

	// タグを含む記事を再取得
	return s.GetByID(article.ID)
}

// GetByID IDで記事を取得
func (s *articleService) GetByID(id uint) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	// 登録順のタグで仮想フィールドを組み立てる
	tags, err := s.tagRepo.GetTagsForArticle(article.ID)
	if err != nil {
		return nil, err
	}
	article.Tags = tags
	s.decorate(article)

	return article, nil
}

// Update 記事を更新
// タグの関連付けは正規化した結果で完全に置き換える (マージしない)
func (s *articleService) Update(id uint, author, content, tagString string) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if author != "" {
		article.Author = author
	}
	if content != "" {
		article.Content = content
	}

	tagNames, err := s.parseAndValidateTags(tagString)
	if err != nil {
		return nil, err
	}

	article.Tags = nil
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		articleRepo := repository.NewArticleRepository(tx)
		tagRepo := repository.NewTagRepository(tx)

		if err := articleRepo.Update(article); err != nil {
			return err
		}
		return s.assignTags(tagRepo, article.ID, tagNames)
	}); err != nil {
		return nil, err
	}

	return s.GetByID(article.ID)
}

// Delete 記事を削除
// 関連付け (taggings) も一緒に削除するが、タグ自体は削除しない
func (s *articleService) Delete(id uint) error {
	if _, err := s.articleRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		articleRepo := repository.NewArticleRepository(tx)
		tagRepo := repository.NewTagRepository(tx)

		if err := tagRepo.DetachTagsFromArticle(id); err != nil {
			return err
		}
		return articleRepo.Delete(id)
	})
}

// List 記事一覧を取得
// tag を指定するとそのタグが付いた記事のみ。存在しないタグ名なら空の一覧。
// page と limit は不正な値を既定値に丸める
func (s *articleService) List(page, limit int, search, tag string) ([]models.Article, int64, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	articles, total, err := s.articleRepo.List(page, limit, search, tag)
	if err != nil {
		return nil, 0, 0, err
	}

	for i := range articles {
		s.decorate(&articles[i])
	}

	// 総ページ数を計算
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return articles, total, totalPages, nil
}

// parseAndValidateTags 生のタグ文字列を正規化し、タグ名の長さを検証する
func (s *articleService) parseAndValidateTags(tagString string) ([]string, error) {
	tagNames := utils.ParseTagString(tagString)

	for _, name := range tagNames {
		if utf8.RuneCountInString(name) > s.config.Tag.MaxNameLength {
			return nil, &ValidationError{
				Message: fmt.Sprintf("タグ名が長すぎます (最大 %d 文字): %s", s.config.Tag.MaxNameLength, name),
			}
		}
	}

	return tagNames, nil
}

// assignTags 正規化済みのタグ名を解決し、記事の関連付けを置き換える
func (s *articleService) assignTags(tagRepo repository.TagRepository, articleID uint, tagNames []string) error {
	tagIDs := make([]uint, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := tagRepo.FindOrCreate(name)
		if err != nil {
			return err
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	return tagRepo.AttachTagsToArticle(articleID, tagIDs)
}

// decorate タグ由来の仮想フィールド (all_tags, tag_links) を組み立てる
func (s *articleService) decorate(article *models.Article) {
	article.AllTags = utils.JoinTagNames(article.Tags)
	article.TagLinks = utils.BuildTagLinks(article.AllTags)
}
