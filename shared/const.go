package shared

const (
	ProgressStoreKey = "github-sdr-progress"
	MissedStoreKey   = "github-sdr-missed-questions"

	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"

	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeTrueFalse      = "true-false"
	QuestionTypeScenario       = "scenario"
	QuestionTypeDragDrop       = "drag-drop"

	CategoryCollaboration = "collaboration"
	CategorySecurity      = "security"
	CategoryDevOps        = "devops"
	CategoryEnterprise    = "enterprise"
	CategoryAIFeatures    = "ai-features"
	CategoryPricing       = "pricing"
	CategoryMigration     = "migration"
	CategoryIntegration   = "integration"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"

	ModeQuickReview     = "quick-review"
	ModeDeepDive        = "deep-dive"
	ModeChallenge       = "challenge"
	ModeMissedQuestions = "missed-questions"

	BadgeFirstSteps     = "first-steps"
	BadgeStreakMaster   = "streak-master"
	BadgeSecurityExpert = "security-expert"
	BadgePerfectScore   = "perfect-score"

	LanguageEnglish  = "en"
	LanguageJapanese = "ja"
)

// Categories lists the closed set of question categories in display order.
var Categories = []string{
	CategoryCollaboration,
	CategorySecurity,
	CategoryDevOps,
	CategoryEnterprise,
	CategoryAIFeatures,
	CategoryPricing,
	CategoryMigration,
	CategoryIntegration,
}

var Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

var StudyModes = []string{ModeQuickReview, ModeDeepDive, ModeChallenge, ModeMissedQuestions}

var Rarities = []string{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

func IsCategory(value string) bool {
	return contains(Categories, value)
}

func IsDifficulty(value string) bool {
	return contains(Difficulties, value)
}

func IsStudyMode(value string) bool {
	return contains(StudyModes, value)
}

func IsRarity(value string) bool {
	return contains(Rarities, value)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
