package dto

// Preferences là tùy chọn trợ năng của người vận hành, lưu theo phiên
type Preferences struct {
	HighContrast  bool   `json:"highContrast"`
	LargeText     bool   `json:"largeText"`
	ReduceMotion  bool   `json:"reduceMotion"`
	ScreenReader  bool   `json:"screenReader"`
	Language      string `json:"language"`
	KeyboardFocus bool   `json:"keyboardFocus"`
}
