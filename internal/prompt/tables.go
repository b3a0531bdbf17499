package prompt

import "strings"

// Lookup tables for the generator. They are read-only after init; every
// accessor below falls back to a templated phrase for unknown keys.

var personalityGuides = map[string]string{
	"親しみやすい":  "読者を「あなた」と呼び、共感的な表現を多用し、体験談を交えて距離感を縮める。例：「私も同じ経験があります」「あなたならどう思いますか？」",
	"真面目":     "論理的で構造化された説明を心がけ、根拠を明確に示し、責任感のある言葉遣いを使う。例：「データによると」「研究結果から」",
	"情熱的":     "感嘆符や強調表現を適度に使い、熱い想いが伝わる力強い文章を書く。例：「本当に素晴らしいんです！」「絶対に知っておくべき」",
	"冷静":      "客観的な分析を重視し、感情的な表現を控えめにし、データや事実を基に論述する。例：「客観的に見ると」「事実として」",
	"優しい":     "読者の気持ちに寄り添う表現を使い、批判的な言葉を避け、励ましの言葉を含める。例：「大丈夫ですよ」「一緒に頑張りましょう」",
	"ユーモアがある": "適度な軽快さを保ち、親しみやすい例えや比喩を使い、読者を楽しませる要素を入れる。例：「まるで〜のような」「実は私も最初は〜でした」",
}

const defaultPersonalityGuide = "個性を文章に反映させる"

// PersonalityGuide returns the behavioural guide for a writer personality.
func PersonalityGuide(personality string) string {
	if g, ok := personalityGuides[personality]; ok {
		return g
	}
	return defaultPersonalityGuide
}

var ageLifestages = map[string]string{
	"10代":   "将来への不安と可能性を持ち、自分の進路を模索している",
	"20代":   "キャリア形成の初期段階で、スキルアップと経験を求めている",
	"30代":   "キャリアと私生活のバランスを模索し、専門性を深めたい",
	"40代":   "責任あるポジションでありながら、次のステップや変化も考えている",
	"50代以上": "豊富な経験を持ちながらも、新しい時代への適応を意識している",
}

const defaultLifestage = "自己成長を求めている"

// occupationTrait pairs occupation substrings with the trait clause they
// imply. Order matters: the first match wins.
type occupationTrait struct {
	markers []string
	trait   string
}

var occupationTraits = []occupationTrait{
	{[]string{"エンジニア", "開発"}, "技術的な詳細と実践的な応用を重視する"},
	{[]string{"マーケ", "広報"}, "トレンドやデータに基づいた戦略的視点を持つ"},
	{[]string{"営業", "セールス"}, "実用的で成果に直結する内容を求める"},
	{[]string{"経営", "管理職"}, "組織全体を見渡す視点と効率化を重視する"},
	{[]string{"デザイナー", "クリエイター"}, "創造性と表現力を大切にしている"},
	{[]string{"学生"}, "将来のキャリアに役立つ知識やスキルを吸収したい"},
}

// ReaderLifestage describes the reader's life stage from their age bucket
// and occupation. Either may be empty.
func ReaderLifestage(age, occupation string) string {
	if age == "" && occupation == "" {
		return "多様な背景を持つ読者"
	}

	var desc string
	if age != "" {
		desc = defaultLifestage
		if d, ok := ageLifestages[age]; ok {
			desc = d
		}
	}
	if occupation != "" {
		desc += "、" + occupationTraitFor(occupation)
	}
	return desc
}

func occupationTraitFor(occupation string) string {
	for _, ot := range occupationTraits {
		for _, m := range ot.markers {
			if strings.Contains(occupation, m) {
				return ot.trait
			}
		}
	}
	return occupation + "としての専門性と日常の課題解決を両立したい"
}

var readingStyleApproaches = map[string]string{
	"じっくり読む":   "深い洞察と詳細な説明を評価する読者なので、丁寧な解説と豊富な例を提供する",
	"流し読み":     "要点を素早く把握したい読者なので、見出しと箇条書きで重要ポイントを明確にする",
	"重要部分だけ":   "必要な情報だけを効率的に得たい読者なので、ハイライトと簡潔な要約を随所に入れる",
	"スマホで隙間時間": "短い時間で価値ある情報を得たい読者なので、簡潔な段落と視覚的な区切りを多用する",
}

// ReadingStyleApproach returns how to shape the text for a reading style.
func ReadingStyleApproach(style string) string {
	if a, ok := readingStyleApproaches[style]; ok {
		return a
	}
	return "効率的に価値ある情報を得たい読者"
}

var interestAppeals = map[string]string{
	"プログラミング": "コードの実例や実践的なテクニックを交えて解説し、スキル向上につながる内容を提供",
	"デザイン":    "視覚的な例と創造的なアプローチを重視し、美的センスと実用性のバランスを意識",
	"マーケティング": "データと成功事例を基に戦略的思考を促し、具体的な成果につながる方法論を提示",
	"ビジネス":    "実務に直結する知見と効率化のポイントを提供し、ビジネスインパクトを強調",
	"キャリア":    "長期的な成長視点とスキル活用の具体例を示し、キャリアパスの選択肢を広げる内容に",
	"スタートアップ": "挑戦と創造の価値を強調し、リスクと機会のバランスを実例で示す",
	"フリーランス":  "自律と自由の実現方法と、安定性を確保するための具体的なテクニックを提案",
	"副業":      "本業とのバランスや時間管理の工夫を重視し、持続可能な取り組み方を提案",
	"投資":      "リスク管理と長期的視点を強調し、感情に左右されない合理的判断を促す",
	"ライフハック":  "日常の小さな工夫が積み重なる大きな効果を示し、すぐに実践できる具体例を多数提供",
}

// InterestAppeal returns the appeal angle for a reader interest.
func InterestAppeal(interest string) string {
	if a, ok := interestAppeals[interest]; ok {
		return a
	}
	return interest + "に関する具体的で実用的な情報を提供"
}

var challengeApproaches = map[string]string{
	"時間がない":  "「私も常に時間との戦いです」と共感しつつ、5分でも効果的に実践できる方法を優先的に紹介",
	"スキル不足":  "「誰もが最初は初心者です」と安心感を与え、スモールステップでの上達方法を具体的に提示",
	"情報過多":   "「情報の海に溺れそうですよね」と共感し、厳選された本質的な情報と優先順位付けの方法を提供",
	"継続できない": "「私も何度も挫折しました」と正直に伝え、心理的ハードルを下げる小さな習慣化の技術を紹介",
	"成果が出ない": "「目に見える成果がないとつらいですよね」と理解を示し、小さな成功体験を積み重ねる方法を提案",
	"何から始めればいいかわからない": "「最初の一歩が最も難しいですよね」と共感し、明確な初心者向けロードマップを提示",
	"モチベーション維持":       "「誰でもモチベーションは波があります」と正常化し、内発的動機付けを高める具体的な方法を提案",
	"専門用語が難しい":        "「私も最初は専門用語の壁に苦労しました」と共有し、平易な言葉での説明と徐々に慣れるアプローチを提供",
}

// ChallengeApproach returns the empathy line and remedy for a reader challenge.
func ChallengeApproach(challenge string) string {
	if a, ok := challengeApproaches[challenge]; ok {
		return a
	}
	return "「" + challenge + "は本当に大変ですよね」と共感しつつ、段階的に克服するための具体的方法を提案"
}

var emojiGuides = map[string]string{
	"none":     "絵文字は一切使用しない",
	"minimal":  "記事の終わりや重要なポイントでのみ1-2個使用（例：✨、💡）",
	"moderate": "各セクションに1-2個程度、読みやすさを向上させる目的で使用",
	"frequent": "親しみやすさを重視し、段落ごとに適切な絵文字を使用（過度にならない範囲で）",
}

// EmojiGuide returns the emoji policy text; unknown policies read as moderate.
func EmojiGuide(frequency string) string {
	if g, ok := emojiGuides[frequency]; ok {
		return g
	}
	return emojiGuides["moderate"]
}

var structureTemplates = map[string][]string{
	"prep": {
		"**結論**: 記事の要点を最初に明確に提示",
		"**理由**: なぜその結論に至るのかの根拠を詳しく説明",
		"**具体例**: 実体験や事例を用いて説得力を高める",
		"**結論**: 要点を再度強調し、読者の行動を促す",
	},
	"story": {
		"**状況設定**: 読者の関心を引く導入部",
		"**問題発生**: 課題や困難の発生",
		"**解決過程**: 取り組みや発見のプロセス",
		"**結果と学び**: 得られた成果と教訓",
	},
	"problem-solution": {
		"**問題提起**: 読者が抱える具体的な課題",
		"**原因分析**: 問題の根本原因を探る",
		"**解決策提示**: 具体的で実践可能な解決方法",
		"**実行指南**: 実際の取り組み方法",
	},
	"how-to": {
		"**概要説明**: 何を達成するのかの明確化",
		"**事前準備**: 必要な知識や準備事項",
		"**実行手順**: ステップバイステップの詳細説明",
		"**応用発展**: さらなる活用方法や発展可能性",
	},
	"comparison": {
		"**選択肢提示**: 複数の方法や選択肢の概要",
		"**詳細比較**: 各選択肢のメリット・デメリット",
		"**評価基準**: 客観的な判断基準の提示",
		"**推奨提案**: 最適な選択肢とその理由",
	},
}

// StructureOutline returns the four outline steps for a template. Unknown
// templates use prep.
func StructureOutline(template string) []string {
	if steps, ok := structureTemplates[template]; ok {
		return steps
	}
	return structureTemplates["prep"]
}
