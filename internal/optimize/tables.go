package optimize

import "github.com/HartBrook/moanote/internal/brief"

// Canonical element names. Provided elements are scored for completeness;
// missing elements feed the clarity checks and priorities.
const (
	ElemKeywords    = "キーワード"
	ElemReader      = "読者ペルソナ"
	ElemWriter      = "書き手キャラクター"
	ElemPrimaryInfo = "一次情報"
	ElemPurpose     = "記事の目的"
	ElemTemplate    = "構成テンプレート"

	MissingKeywords    = "具体的なキーワード"
	MissingPurpose     = "明確な記事の目的"
	MissingChallenges  = "読者の具体的な課題"
	MissingPrimaryInfo = "実体験・一次情報"
	MissingPsychology  = "心理効果の活用"
)

// canonicalElementCount is the denominator of the completeness score.
const canonicalElementCount = 6

// Diagnosis labels.
const (
	GapIntent   = "コアインテントの具体性不足"
	GapEntities = "キーエンティティの不足"
	GapMissing  = "必要要素の欠如"

	AmbiguityAudience = "ターゲット読者の曖昧さ"
	AmbiguityKeywords = "キーワード活用方針の不明確さ"

	PriorityPurpose     = "目的の明確化"
	PriorityPersona     = "読者ペルソナの深化"
	PrioritySpecificity = "具体性・信頼性の向上"
)

var goalIntents = map[brief.Goal]string{
	brief.GoalLearn:   "読者の学習・知識習得を促進",
	brief.GoalBuy:     "読者の購買行動を促進",
	brief.GoalThink:   "読者の思考・視点の変化を促進",
	brief.GoalAction:  "読者の具体的行動を促進",
	brief.GoalShare:   "読者のシェア・拡散を促進",
	brief.GoalContact: "読者の問い合わせ・相談を促進",
}

func goalIntent(g brief.Goal) string {
	if s, ok := goalIntents[g]; ok {
		return s
	}
	return "読者との価値ある関係構築"
}

// priorityForMissing maps a missing element to the priority it raises, in
// the order priorities are reported.
var priorityForMissing = []struct {
	missing  string
	priority string
}{
	{MissingPurpose, PriorityPurpose},
	{MissingChallenges, PriorityPersona},
	{MissingPrimaryInfo, PrioritySpecificity},
}

// technicalTerms mark a keyword as technical.
var technicalTerms = []string{"プログラミング", "技術", "開発"}

// educationalTerms mark a core intent as educational.
var educationalTerms = []string{"学習", "教育"}

var techniques = map[RequestType]string{
	RequestCreative:    "多角的視点 + トーン強調 + 感情的共感",
	RequestTechnical:   "制約ベース + 精密フォーカス + ステップバイステップ",
	RequestEducational: "少数ショット例 + 明確構造 + 段階的学習",
	RequestComplex:     "思考連鎖 + 体系的枠組み + 多層分析",
}

// Technique returns the rhetorical technique label for a request type.
func Technique(rt RequestType) string {
	if t, ok := techniques[rt]; ok {
		return t
	}
	return "会話的アプローチ + 具体例重視"
}

var frameworks = map[string]string{
	"prep": `**PREP法 強化版**
1. **結論 (Point)**: 核心的価値提案 + 読者への直接的メリット
2. **理由 (Reason)**: 論理的根拠 + 感情的共感 + 社会証明
3. **具体例 (Example)**: 実体験 + 成功事例 + 失敗から学んだ教訓
4. **結論 (Point)**: 行動促進 + 継続のモチベーション`,

	"story": `**ストーリーテリング 強化版**
1. **状況設定**: 読者が共感できるリアルな状況描写
2. **問題発生**: 具体的な課題と感情的な葛藤
3. **解決過程**: 試行錯誤のプロセスと学びの瞬間
4. **結果と学び**: 変化の実感と読者への応用可能性`,

	"problem-solution": `**問題解決型 強化版**
1. **問題の可視化**: データと体験談による課題の明確化
2. **根本原因**: 表面的でない真の原因の分析
3. **解決策**: 段階的で実践可能な具体的方法
4. **実装ガイド**: 継続のコツと障害の乗り越え方`,
}

// Framework returns the enhanced outline for a template. Templates without
// an enhanced outline use prep.
func Framework(template string) string {
	if f, ok := frameworks[template]; ok {
		return f
	}
	return frameworks["prep"]
}

// Constant report lines.
const (
	ImprovementIntent       = "記事の目的と価値提案を明確化"
	ImprovementPersona      = "読者ペルソナの詳細化と心理的特性の追加"
	ImprovementSpecificity  = "具体例と実践的要素の強化"
	ImprovementCompleteness = "不足要素の補完と構成の体系化"
	ImprovementRole         = "AIの役割定義の専門性向上"
	ImprovementQA           = "品質保証プロトコルの実装"

	TipSpecificity  = "具体的な数字や事例を多用することで説得力を大幅に向上させられます"
	TipCompleteness = "一次情報（体験談）を追加することで、他の記事との差別化が図れます"
	TipPortable     = "このプロンプトをChatGPT/Claude/Geminiいずれでも使用可能です"
	TipFollowUp     = "生成された記事の品質をさらに向上させるには、出力後に「読者の○○という課題への解決策をもう一つ追加して」などの追加指示が効果的です"
)

var baseTechniques = []string{
	"役割の専門性強化（3層の専門性定義）",
	"コンテキストの階層化（読者プロファイル + 戦略 + 差別化）",
	"出力仕様の精密化（品質基準 + チェックリスト）",
}

var complexTechniques = []string{"思考連鎖アプローチ", "多層分析フレームワーク"}

var specificityTechniques = []string{"制約ベース最適化", "社会証明の統合"}
