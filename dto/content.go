package dto

type QuestionFilter struct {
	Category   string `query:"category" validate:"omitempty,category"`
	Difficulty string `query:"difficulty" validate:"omitempty,difficulty"`
}

type CatalogSummary struct {
	Questions     int            `json:"questions"`
	Badges        int            `json:"badges"`
	PerCategory   map[string]int `json:"per_category"`
	PerDifficulty map[string]int `json:"per_difficulty"`
}
