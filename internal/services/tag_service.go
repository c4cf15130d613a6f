package services

import (
	"github.com/TagBoard/tagboard_backend/internal/config"
	"github.com/TagBoard/tagboard_backend/internal/models"
	"github.com/TagBoard/tagboard_backend/internal/repository"
	"github.com/TagBoard/tagboard_backend/internal/utils"
)

// TagService タグに関するサービスインターフェース
type TagService interface {
	List(search string, limit int) ([]models.Tag, error)
	Cloud() ([]models.TagCloudEntry, error)
}

// tagService TagServiceの実装
type tagService struct {
	tagRepo repository.TagRepository
	config  *config.Config
}

// NewTagService TagServiceを作成
func NewTagService(tagRepo repository.TagRepository, cfg *config.Config) TagService {
	return &tagService{
		tagRepo: tagRepo,
		config:  cfg,
	}
}

// List タグ一覧を取得
func (s *tagService) List(search string, limit int) ([]models.Tag, error) {
	return s.tagRepo.List(search, limit)
}

// Cloud タグクラウドを取得
// 全タグに利用数に応じたサイズクラスを割り当てて返す。
// タグが1つもなければ空の結果を返す。
func (s *tagService) Cloud() ([]models.TagCloudEntry, error) {
	counts, err := s.tagRepo.ListWithCounts()
	if err != nil {
		return nil, err
	}

	return utils.AssignSizeClasses(counts, s.config.Tag.SizeClasses), nil
}
