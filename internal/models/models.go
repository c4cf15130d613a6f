package models

import (
	"time"
)

// Tag タグモデル
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`

	// リレーション
	Articles []Article `json:"-" gorm:"many2many:taggings;"`
}

// Article 記事モデル
type Article struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Author    string    `json:"author" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// リレーション
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:taggings;"`

	// タグ名をカンマ区切りで連結した仮想フィールド (JSONレスポンス用、保存しない)
	AllTags string `json:"all_tags" gorm:"-"`

	// タグへのリンク情報 (JSONレスポンス用)
	TagLinks []TagLink `json:"tag_links,omitempty" gorm:"-"`
}

// TagLink タグ名とそのタグの記事一覧へのリンク先
type TagLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Tagging 記事とタグの中間テーブル
type Tagging struct {
	ArticleID uint      `gorm:"primaryKey"`
	TagID     uint      `gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName テーブル名指定
func (Tagging) TableName() string {
	return "taggings"
}

// TagCount タグと利用数の組 (タグクラウド用)
type TagCount struct {
	Tag   Tag   `json:"tag"`
	Count int64 `json:"count"`
}

// TagCloudEntry タグクラウドの1エントリ
type TagCloudEntry struct {
	Tag       Tag    `json:"tag"`
	Count     int64  `json:"count"`
	SizeClass string `json:"size_class"`
}
