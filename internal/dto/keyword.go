package dto

type HotKeywords struct {
	Keywords []string `json:"keywords"`
}
