package models

const (
	ThemeKey     = "theme"
	DefaultTheme = "light"
)

type ThemeRequest struct {
	Theme *string `json:"theme"`
}

type SummarizeRequest struct {
	Text string `json:"text"`
}
