package utils

import (
	"math"

	"github.com/TagBoard/tagboard_backend/internal/models"
)

// AssignSizeClasses 各タグに利用数に応じたサイズクラスを割り当てる
// classes は小→大の順に並んだサイズクラスのリスト。
// 最大利用数との比率からバケットを決める:
//
//	bucket = round(count / max * (len(classes) - 1))
//
// 丸めは math.Round (0.5 はゼロから遠い方へ)。
// 全タグの利用数が 0 の場合はすべて最小クラスになる (ゼロ除算しない)。
// counts が空なら空の結果を返す。入力の並び順を維持する。
func AssignSizeClasses(counts []models.TagCount, classes []string) []models.TagCloudEntry {
	if len(counts) == 0 || len(classes) == 0 {
		return nil
	}

	var max int64
	for _, tc := range counts {
		if tc.Count > max {
			max = tc.Count
		}
	}

	entries := make([]models.TagCloudEntry, 0, len(counts))
	for _, tc := range counts {
		ratio := 0.0
		if max > 0 {
			ratio = float64(tc.Count) / float64(max)
		}

		index := int(math.Round(ratio * float64(len(classes)-1)))
		if index < 0 {
			index = 0
		}
		if index > len(classes)-1 {
			index = len(classes) - 1
		}

		entries = append(entries, models.TagCloudEntry{
			Tag:       tc.Tag,
			Count:     tc.Count,
			SizeClass: classes[index],
		})
	}

	return entries
}
