package seeders

import (
	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

// BadgeSeeder supplies the static badge catalog. Entries carry no
// UnlockedAt; that is stamped when a badge is granted.
type BadgeSeeder struct{}

func NewBadgeSeeder() *BadgeSeeder {
	return &BadgeSeeder{}
}

func (s *BadgeSeeder) GetBadges() []model.Badge {
	return []model.Badge{
		{
			ID:          shared.BadgeFirstSteps,
			Name:        ls("First Steps", "最初の一歩"),
			Description: ls("Answered your first question correctly", "最初の問題を正解しました"),
			Icon:        "🎯",
			Rarity:      shared.RarityCommon,
		},
		{
			ID:          shared.BadgeStreakMaster,
			Name:        ls("Streak Master", "連続マスター"),
			Description: ls("Maintained a 7-day study streak", "7日間の学習連続記録を達成"),
			Icon:        "🔥",
			Rarity:      shared.RarityRare,
		},
		{
			ID:          shared.BadgeSecurityExpert,
			Name:        ls("Security Expert", "セキュリティエキスパート"),
			Description: ls("Mastered all security-related questions", "セキュリティ関連の全問題をマスター"),
			Icon:        "🛡️",
			Rarity:      shared.RarityEpic,
		},
		{
			// No rule grants this badge yet.
			ID:          shared.BadgePerfectScore,
			Name:        ls("Perfect Score", "満点獲得"),
			Description: ls("Achieved 100% accuracy in a challenge mode", "チャレンジモードで100%の正解率を達成"),
			Icon:        "💎",
			Rarity:      shared.RarityLegendary,
		},
	}
}
