// seeders/question_seeder.go
package seeders

import (
	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

// QuestionSeeder supplies the static question catalog.
type QuestionSeeder struct{}

func NewQuestionSeeder() *QuestionSeeder {
	return &QuestionSeeder{}
}

func ls(en, ja string) model.LocalizedString {
	return model.LocalizedString{En: en, Ja: ja}
}

func lsPtr(en, ja string) *model.LocalizedString {
	s := ls(en, ja)
	return &s
}

// GetQuestions returns a fresh copy of the catalog on every call.
func (s *QuestionSeeder) GetQuestions() []model.Question {
	return []model.Question{
		{
			ID:         "github-actions-basics",
			Category:   shared.CategoryDevOps,
			Difficulty: shared.DifficultyBeginner,
			Type:       shared.QuestionTypeMultipleChoice,
			Question:   ls("What is GitHub Actions primarily used for?", "GitHub Actionsは主に何に使用されますか？"),
			Options: []model.LocalizedString{
				ls("Code collaboration", "コード共同作業"),
				ls("CI/CD automation", "CI/CD自動化"),
				ls("Issue tracking", "課題管理"),
				ls("Code review", "コードレビュー"),
			},
			CorrectAnswer: model.IndexAnswer(1),
			Explanation: ls(
				"GitHub Actions is a CI/CD platform that allows you to automate your build, test, and deployment pipeline.",
				"GitHub Actionsは、ビルド、テスト、デプロイメントパイプラインを自動化できるCI/CDプラットフォームです。",
			),
			UseCase: ls(
				"Perfect for enterprise teams wanting to automate their software delivery process and reduce manual deployment errors.",
				"ソフトウェア配信プロセスを自動化し、手動デプロイエラーを削減したい企業チームに最適です。",
			),
			CustomerScenario: lsPtr(
				"A fintech company needs to deploy code changes safely with automated testing. GitHub Actions can run their test suite on every pull request and automatically deploy to staging environments.",
				"フィンテック企業が自動テストでコード変更を安全にデプロイする必要があります。GitHub Actionsは、すべてのプルリクエストでテストスイートを実行し、ステージング環境に自動的にデプロイできます。",
			),
			Points: 100,
			Tags:   []string{"automation", "ci-cd", "enterprise"},
		},
		{
			ID:         "copilot-enterprise",
			Category:   shared.CategoryAIFeatures,
			Difficulty: shared.DifficultyIntermediate,
			Type:       shared.QuestionTypeMultipleChoice,
			Question:   ls("Which GitHub Copilot feature helps with enterprise code security?", "企業のコードセキュリティに役立つGitHub Copilotの機能はどれですか？"),
			Options: []model.LocalizedString{
				ls("Code completion suggestions", "コード補完の提案"),
				ls("Vulnerability filtering", "脆弱性フィルタリング"),
				ls("Documentation generation", "ドキュメント生成"),
				ls("Code translation", "コード翻訳"),
			},
			CorrectAnswer: model.IndexAnswer(1),
			Explanation: ls(
				"GitHub Copilot Enterprise includes vulnerability filtering that blocks suggestions containing known security vulnerabilities.",
				"GitHub Copilot Enterpriseには、既知のセキュリティ脆弱性を含む提案をブロックする脆弱性フィルタリングが含まれています。",
			),
			UseCase: ls(
				"Enterprise customers concerned about code security can ensure AI-generated suggestions meet their security standards.",
				"コードセキュリティを懸念する企業顧客は、AI生成の提案がセキュリティ基準を満たすことを確保できます。",
			),
			CustomerScenario: lsPtr(
				"A healthcare company needs to ensure their patient data systems don't have vulnerabilities. Copilot Enterprise prevents insecure code patterns from being suggested.",
				"医療会社は患者データシステムに脆弱性がないことを確保する必要があります。Copilot Enterpriseは、安全でないコードパターンの提案を防ぎます。",
			),
			Points: 150,
			Tags:   []string{"ai", "security", "enterprise", "copilot"},
		},
		{
			ID:         "github-advanced-security",
			Category:   shared.CategorySecurity,
			Difficulty: shared.DifficultyAdvanced,
			Type:       shared.QuestionTypeMultipleChoice,
			Question:   ls("Which GitHub Advanced Security feature helps prevent secrets from being committed?", "シークレットのコミットを防ぐのに役立つGitHub Advanced Securityの機能はどれですか？"),
			Options: []model.LocalizedString{
				ls("Dependency Review", "依存関係レビュー"),
				ls("Code Scanning", "コードスキャニング"),
				ls("Secret Scanning", "シークレットスキャニング"),
				ls("Security Advisories", "セキュリティアドバイザリ"),
			},
			CorrectAnswer: model.IndexAnswer(2),
			Explanation: ls(
				"Secret Scanning automatically detects and alerts when secrets like API keys, tokens, or passwords are committed to repositories.",
				"シークレットスキャニングは、APIキー、トークン、パスワードなどのシークレットがリポジトリにコミットされたときに自動的に検出してアラートします。",
			),
			UseCase: ls(
				"Critical for enterprises handling sensitive data - prevents accidental exposure of credentials that could lead to security breaches.",
				"機密データを扱う企業にとって重要 - セキュリティ侵害につながる可能性のある認証情報の偶発的な露出を防ぎます。",
			),
			CustomerScenario: lsPtr(
				"A banking client accidentally commits database credentials. Secret Scanning immediately alerts the security team and helps revoke the compromised credentials before any breach occurs.",
				"銀行クライアントが誤ってデータベース認証情報をコミットしました。シークレットスキャニングは、セキュリティチームに即座にアラートし、侵害が発生する前に危険にさらされた認証情報の取り消しを支援します。",
			),
			Points: 200,
			Tags:   []string{"security", "enterprise", "secrets", "advanced"},
		},
		{
			ID:         "github-enterprise-collaboration",
			Category:   shared.CategoryCollaboration,
			Difficulty: shared.DifficultyIntermediate,
			Type:       shared.QuestionTypeScenario,
			Question: ls(
				"A large enterprise team of 500 developers needs better code review processes. Which GitHub feature combination would you recommend?",
				"500人の開発者からなる大企業チームは、より良いコードレビュープロセスが必要です。どのGitHub機能の組み合わせを推奨しますか？",
			),
			Options: []model.LocalizedString{
				ls("Pull Requests + Branch Protection Rules + CODEOWNERS", "プルリクエスト + ブランチ保護ルール + CODEOWNERS"),
				ls("Issues + Projects + Wikis", "課題 + プロジェクト + Wiki"),
				ls("GitHub Pages + Actions + Packages", "GitHub Pages + Actions + Packages"),
				ls("Discussions + Releases + Insights", "ディスカッション + リリース + インサイト"),
			},
			CorrectAnswer: model.IndexAnswer(0),
			Explanation: ls(
				"This combination ensures structured code reviews, prevents direct pushes to main branches, and automatically assigns the right reviewers.",
				"この組み合わせは、構造化されたコードレビューを確保し、メインブランチへの直接プッシュを防ぎ、適切なレビューアーを自動的に割り当てます。",
			),
			UseCase: ls(
				"Essential for large teams to maintain code quality and ensure proper review processes without bottlenecks.",
				"大規模チームがボトルネックなしでコード品質を維持し、適切なレビュープロセスを確保するために不可欠です。",
			),
			CustomerScenario: lsPtr(
				"Microsoft's Windows team uses this exact setup to manage contributions from hundreds of developers while maintaining high code quality standards.",
				"マイクロソフトのWindowsチームは、高いコード品質基準を維持しながら、何百人もの開発者からの貢献を管理するために、まさにこの設定を使用しています。",
			),
			Points: 175,
			Tags:   []string{"collaboration", "enterprise", "code-review", "workflow"},
		},
		{
			ID:         "github-pricing-enterprise",
			Category:   shared.CategoryPricing,
			Difficulty: shared.DifficultyBeginner,
			Type:       shared.QuestionTypeMultipleChoice,
			Question:   ls("What's the key difference between GitHub Team and GitHub Enterprise plans?", "GitHub TeamプランとGitHub Enterpriseプランの主な違いは何ですか？"),
			Options: []model.LocalizedString{
				ls("Number of repositories", "リポジトリ数"),
				ls("Advanced security features and compliance", "高度なセキュリティ機能とコンプライアンス"),
				ls("GitHub Actions minutes", "GitHub Actions分数"),
				ls("Storage capacity", "ストレージ容量"),
			},
			CorrectAnswer: model.IndexAnswer(1),
			Explanation: ls(
				"Enterprise plans include GitHub Advanced Security, SAML/SCIM, audit logs, and compliance features that Team plans don't have.",
				"Enterpriseプランには、TeamプランにはないGitHub Advanced Security、SAML/SCIM、監査ログ、コンプライアンス機能が含まれています。",
			),
			UseCase: ls(
				"Perfect selling point for regulated industries like finance, healthcare, and government that need compliance features.",
				"コンプライアンス機能を必要とする金融、医療、政府などの規制業界にとって完璧なセールスポイントです。",
			),
			Points: 125,
			Tags:   []string{"pricing", "enterprise", "compliance", "security"},
		},
	}
}
