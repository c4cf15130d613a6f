package utils

import (
	"net/url"
	"strings"

	"github.com/TagBoard/tagboard_backend/internal/models"
)

// ParseTagString カンマ区切りのタグ文字列を個々のタグ名に分割する
// 各断片の前後の空白を取り除き、空の断片は捨てる。
// 重複するタグ名は最初の出現のみを残す (出現順を維持)。
func ParseTagString(raw string) []string {
	var names []string
	seen := make(map[string]struct{})

	for _, fragment := range strings.Split(raw, ",") {
		name := strings.TrimSpace(fragment)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// JoinTagNames タグ名を ", " で連結して表示用文字列を作る (登録順を維持)
func JoinTagNames(tags []models.Tag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ", ")
}

// BuildTagLinks 表示用のタグ文字列を再分割し、タグごとの記事一覧へのリンクを作る
// 分割・トリム・空断片の除去は ParseTagString と同じ規則を使う
func BuildTagLinks(tagString string) []models.TagLink {
	var links []models.TagLink
	for _, name := range ParseTagString(tagString) {
		links = append(links, models.TagLink{
			Name: name,
			URL:  "/api/v1/articles?tag=" + url.QueryEscape(name),
		})
	}
	return links
}
