package services

import (
	"sort"
	"strings"

	"frontdesk/dto"
	"frontdesk/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách tên loại phòng
func createMatcher(names []string) *closestmatch.ClosestMatch {
	return closestmatch.New(names, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SuggestRoomTypes gợi ý loại phòng cho ô nhập của form tạo số phòng.
// So khớp không dấu và chấp nhận gõ sai chính tả nhẹ
func SuggestRoomTypes(query string, types []models.RoomType, limit int) []dto.SuggestResponse {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" || len(types) == 0 {
		return nil
	}

	byNormalized := make(map[string]models.RoomType, len(types))
	names := make([]string, 0, len(types))
	for _, t := range types {
		normalized := normalizeInput(t.Name)
		byNormalized[normalized] = t
		names = append(names, normalized)
	}

	matcher := createMatcher(names)
	closest := matcher.ClosestN(normalizedQuery, len(names))

	var suggestions []dto.SuggestResponse
	for _, name := range closest {
		t, ok := byNormalized[name]
		if !ok {
			continue
		}
		score := calculateSimilarity(normalizedQuery, name)
		if strings.Contains(name, normalizedQuery) && score < 0.5 {
			// Substring match vẫn đáng gợi ý dù levenshtein thấp
			score = 0.5
		}
		if score < 0.3 {
			continue
		}
		suggestions = append(suggestions, dto.SuggestResponse{
			ID:    t.ID,
			Name:  t.Name,
			Score: score,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
