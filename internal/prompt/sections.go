package prompt

import (
	"fmt"
	"strings"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/textutil"
)

// Section headers. The first five are required by Check.
const (
	HeaderRole      = "あなたの役割とキャラクター設定"
	HeaderTarget    = "ターゲット読者の詳細設定"
	HeaderTone      = "文体・口調の詳細設定"
	HeaderPrimary   = "一次情報の活用指示"
	HeaderKeyword   = "記事のキーワードと目的（必須）"
	HeaderStructure = "構成と文字数の明確化"
	HeaderQuality   = "出力品質の要求"
	HeaderConcrete  = "具体的な執筆指示"

	MarkerKeywords = "対象キーワード:"
	MarkerPurpose  = "記事の目的:"
)

// DefaultPurpose is restated when the brief has no purpose.
const DefaultPurpose = "読者に価値ある情報を提供し、具体的な行動につなげる"

// builder renders one section. ok is false when the section is omitted.
type builder func(b *brief.Brief) (text string, ok bool)

type sectionDef struct {
	name   string
	title  string
	render builder
}

// sectionDefs is the fixed generation order.
var sectionDefs = []sectionDef{
	{"role", HeaderRole, buildRole},
	{"target", HeaderTarget, buildTarget},
	{"tone", HeaderTone, buildTone},
	{"primary", HeaderPrimary, buildPrimaryInfo},
	{"keyword", HeaderKeyword, buildKeywordAndPurpose},
	{"structure", HeaderStructure, buildStructure},
	{"quality", HeaderQuality, buildQuality},
	{"concrete", HeaderConcrete, buildConcrete},
}

func heading(title string) string {
	return "# " + title + "\n\n"
}

func buildRole(b *brief.Brief) (string, bool) {
	w := b.WriterCharacter
	var s strings.Builder
	s.WriteString(heading(HeaderRole))

	s.WriteString("## 基本プロフィール\n")
	fmt.Fprintf(&s, "- 年齢: %s歳\n", orDefault(w.Age, "30"))
	fmt.Fprintf(&s, "- 職業: %s\n", orDefault(w.Occupation, "ライター"))

	if len(w.Personalities) > 0 {
		fmt.Fprintf(&s, "- 性格: %s\n", textutil.JoinJa(w.Personalities))
		s.WriteString("\n## 性格の文章への反映方法:\n")
		for _, p := range w.Personalities {
			fmt.Fprintf(&s, "- %s: %s\n", p, PersonalityGuide(p))
		}
	}

	if len(w.Motivations) > 0 {
		s.WriteString("\n## 執筆動機:\n")
		fmt.Fprintf(&s, "%sという強い想いで記事を書いています。\n", textutil.JoinJa(w.Motivations))
		s.WriteString("この動機を文章の端々に感じられるような温度感で執筆してください。\n")
	}

	s.WriteString("\n**重要**: 上記のキャラクター設定を単なる情報として扱わず、文章の一つ一つの表現に反映させてください。")
	return s.String(), true
}

func buildTarget(b *brief.Brief) (string, bool) {
	r := b.ReaderPersona
	var s strings.Builder
	s.WriteString(heading(HeaderTarget))

	s.WriteString("## 読者プロフィールと心理特性\n")
	s.WriteString("**あなたが話しかけている読者は以下のような人です：**\n")

	if r.Age != "" || r.Occupation != "" {
		fmt.Fprintf(&s, "- %s\n", ReaderLifestage(r.Age, r.Occupation))
	} else {
		s.WriteString("- 日々の忙しさの中でも自己成長を求めている人\n")
	}

	if r.ReadingStyle != "" {
		fmt.Fprintf(&s, "- %s\n", ReadingStyleApproach(r.ReadingStyle))
	}

	if len(r.Interests) > 0 {
		s.WriteString("\n## 読者の関心事と訴求ポイント:\n")
		for _, i := range r.Interests {
			fmt.Fprintf(&s, "- %sに関心がある → %s\n", i, InterestAppeal(i))
		}
	}

	if len(r.Challenges) > 0 {
		s.WriteString("\n## 読者の課題への共感と解決アプローチ:\n")
		for _, c := range r.Challenges {
			fmt.Fprintf(&s, "- %sという悩みを持つ → %s\n", c, ChallengeApproach(c))
		}
	}

	s.WriteString("\n**重要**: 読者の属性情報を単に説明するのではなく、上記の特性を持つ具体的な人物に直接語りかけるように文章を構成してください。読者がまさに「自分のことを理解してくれている」と感じる内容にしましょう。")
	return s.String(), true
}

func buildTone(b *brief.Brief) (string, bool) {
	var s strings.Builder
	s.WriteString(heading(HeaderTone))

	style := "丁寧で解説的な"
	if b.WritingStyle.Conversational {
		style = "会話的で親しみやすい"
	}
	s.WriteString("## 基本的な口調\n")
	fmt.Fprintf(&s, "- 語尾: %s\n", b.Tone())
	fmt.Fprintf(&s, "- 文体: %s文体\n", style)

	if b.WritingStyle.Conversational {
		s.WriteString("\n## 会話的文体の具体例:\n")
		s.WriteString(textutil.Bullets(
			"「〜ですよね」「〜だと思うんです」などの共感表現を使用",
			"「実は」「ちなみに」などの接続表現で親近感を演出",
			"読者への直接的な問いかけを適度に含める",
		))
	} else {
		s.WriteString("\n## 解説的文体の具体例:\n")
		s.WriteString(textutil.Bullets(
			"「〜について説明します」「〜を解説いたします」などの丁寧な表現",
			"論理的な展開と明確な構造を重視",
			"専門用語は必ず分かりやすく説明",
		))
	}

	fmt.Fprintf(&s, "\n## 絵文字使用方針:\n%s\n", EmojiGuide(b.WritingStyle.EmojiFrequency))

	s.WriteString("\n**重要**: 設定された口調を一貫して保ち、読者が「この人らしい」と感じる文章を書いてください。")
	return s.String(), true
}

func buildPrimaryInfo(b *brief.Brief) (string, bool) {
	p := b.PrimaryInfo
	if p.Facts == "" && p.Feelings == "" {
		return "", false
	}

	var s strings.Builder
	s.WriteString(heading(HeaderPrimary))

	if p.Facts != "" {
		s.WriteString("## 事実・体験談の活用:\n")
		s.WriteString("以下の事実を記事の信頼性を高める具体例として使用してください：\n")
		fmt.Fprintf(&s, "「%s」\n\n", p.Facts)
		s.WriteString("**活用方法**: 抽象的な説明ではなく、この具体的な体験を元に説得力のある文章を構築\n\n")
	}

	if p.Feelings != "" {
		s.WriteString("## 感情・感想の活用:\n")
		s.WriteString("以下の感情体験を読者との共感ポイントとして使用してください：\n")
		fmt.Fprintf(&s, "「%s」\n\n", p.Feelings)
		s.WriteString("**活用方法**: 読者が「この人の気持ち分かる」と感じるような温度感で表現\n\n")
	}

	s.WriteString("**重要**: 事実と感情を適切に組み合わせ、読者にリアルな体験として伝わる文章を作成してください。")
	return s.String(), true
}

func buildKeywordAndPurpose(b *brief.Brief) (string, bool) {
	var s strings.Builder
	s.WriteString(heading(HeaderKeyword))

	s.WriteString("## " + MarkerKeywords + "\n")
	if b.HasKeywords() {
		s.WriteString(textutil.Numbered(b.Keywords))

		s.WriteString("\n## キーワード活用の必須要件:\n")
		fmt.Fprintf(&s, "- メインキーワード「%s」: 記事タイトルに必ず含め、各見出しでも言及する\n", b.MainKeyword())
		if subs := b.SubKeywords(); len(subs) > 0 {
			fmt.Fprintf(&s, "- サブキーワード: %s\n", textutil.JoinJa(subs))
			s.WriteString("  これらは自然な文脈で本文に織り込み、メインキーワードとの関連性を示す\n")
		}

		s.WriteString("\n## キーワード使用の注意事項:\n")
		s.WriteString(textutil.Bullets(
			"各キーワードは記事全体で最低2-3回は自然に言及すること",
			"キーワードの不自然な詰め込みは避け、読者にとって価値のある文脈でのみ使用",
			"SEOを意識しつつも、読みやすさを最優先とする",
		))
		s.WriteString("\n")
	} else {
		fmt.Fprintf(&s, "1. %s（キーワードが指定されていません）\n\n", brief.PlaceholderKeyword)
		s.WriteString("## キーワード設定の重要性:\n")
		s.WriteString("- 記事の焦点を明確にするため、具体的なテーマやキーワードを意識して執筆してください\n\n")
	}

	s.WriteString("## " + MarkerPurpose + "\n")
	if b.HasPurpose() {
		fmt.Fprintf(&s, "「%s」\n\n", b.Purpose)
		s.WriteString("## 目的達成のための執筆方針:\n")
		s.WriteString(textutil.Bullets(
			"この目的を常に意識して、記事の各部分がこの目的に沿うように構成してください",
			"読者がこの記事を読み終えた後、具体的に何を得られるか、どのような行動を取れるようになるかを明確にしてください",
			"目的と関連しない余分な情報は省略し、目的達成に必要な情報に集中してください",
		))
		s.WriteString("\n")
	} else {
		fmt.Fprintf(&s, "「%s」\n\n", DefaultPurpose)
		s.WriteString("## 目的設定の重要性:\n")
		s.WriteString(textutil.Bullets(
			"明確な目的を持った記事は読者にとって価値が高くなります",
			"読者の課題解決や知識向上に貢献する内容を心がけてください",
		))
		s.WriteString("\n")
	}

	s.WriteString("**最重要**: キーワードと目的は記事作成において最も重要な要素です。これらを無視した記事は作成しないでください。")
	return s.String(), true
}

func buildStructure(b *brief.Brief) (string, bool) {
	wc := b.EffectiveWordCount()
	var s strings.Builder
	s.WriteString(heading(HeaderStructure))

	fmt.Fprintf(&s, "## 記事構成（%s法）:\n", strings.ToUpper(b.TemplateName()))
	s.WriteString(textutil.Numbered(StructureOutline(b.TemplateName())))

	s.WriteString("\n## 文字数要件:\n")
	fmt.Fprintf(&s, "- 目標文字数: %d文字\n", wc)
	fmt.Fprintf(&s, "- 読了時間: 約%d分\n", textutil.ReadingMinutes(wc))
	s.WriteString("- 各セクションのバランスを考慮し、内容の濃い文章を作成\n")

	if wc >= 5000 {
		s.WriteString("\n## 長文記事の構成ガイド:\n")
		s.WriteString(textutil.Bullets(
			"目次を最初に配置し、各セクションへのナビゲーションを提供",
			"各トピックを独立したセクションとして詳細に展開",
			"セクション間の関連性と一貫性を保つ",
			"読者が途中で読むのをやめないよう、セクション間に小さな「フック」を入れる",
		))
		if wc >= 8000 {
			s.WriteString(textutil.Bullets(
				"よくある質問（FAQ）セクションを追加し、読者の疑問に先回りして答える",
				"実践例や事例研究を含めて具体性を高める",
			))
		}
	}

	if wc <= 1000 {
		s.WriteString("\n## 短文記事の構成ガイド:\n")
		s.WriteString(textutil.Bullets(
			"冗長な表現を避け、簡潔で明瞭な文章を心がける",
			"最も重要なポイントを優先し、本質的でない情報は省略",
			"1つの段落は1つのアイデアに集中",
		))
		if wc <= 140 {
			s.WriteString(textutil.Bullets(
				"SNS投稿向けの超簡潔な表現を使用",
				"核となるメッセージを最初に配置",
				"行動喚起フレーズを含める",
			))
		}
	}

	return s.String(), true
}

const qualityBody = `## 必須要件:
1. **具体性**: 抽象的な表現を避け、具体的な例や数字を多用
2. **独自性**: テンプレート的な表現を避け、個性的な文章を作成
3. **実用性**: 読者が実際に活用できる価値ある情報を提供
4. **読みやすさ**: 適切な改行と段落分けで読みやすい構成
5. **一貫性**: 設定されたキャラクターと文体を最後まで維持
6. **キーワード活用**: 指定されたキーワードを自然に文章に組み込む
7. **目的達成**: 設定された記事の目的を必ず達成する

## 避けるべき表現:
- 「〜について説明します」などの定型的な表現
- 「重要です」「大切です」などの曖昧な強調
- 同じパターンの繰り返し（「私の経験から〜」の多用など）
- 表面的で深みのない内容
- キーワードの無理な詰め込み

## 目指すべき品質:
- 読者が「この人にしか書けない」と感じる独自性
- 最後まで飽きずに読める構成と文体
- 読み終わった後に行動を起こしたくなる説得力
- 人間味と温かみが感じられる文章
- 自然でありながらSEOも意識した内容

**最重要**: 上記すべての設定を統合し、読者の心に響く高品質な記事を作成してください。`

func buildQuality(*brief.Brief) (string, bool) {
	return heading(HeaderQuality) + qualityBody, true
}

// Budget splits a target length into intro, body and conclusion character
// counts (15%, 70%, 15%, each floored).
type Budget struct {
	Intro      int
	Body       int
	Conclusion int
}

// BudgetFor returns the section budget for a word count.
func BudgetFor(wordCount int) Budget {
	return Budget{
		Intro:      textutil.Portion(wordCount, 15),
		Body:       textutil.Portion(wordCount, 70),
		Conclusion: textutil.Portion(wordCount, 15),
	}
}

func buildConcrete(b *brief.Brief) (string, bool) {
	wc := b.EffectiveWordCount()
	budget := BudgetFor(wc)

	var s strings.Builder
	s.WriteString(heading(HeaderConcrete))
	s.WriteString("## 記事作成の必須手順:\n\n")

	fmt.Fprintf(&s, "1. **導入部（%d文字程度）**:\n", budget.Intro)
	s.WriteString("- 読者の関心を引く具体的なエピソードや事実から始める\n")
	s.WriteString("- 設定されたキャラクターの個性を最初から表現する\n")
	s.WriteString("- 読者の課題や興味に直接言及する")
	if b.HasKeywords() {
		fmt.Fprintf(&s, "\n- **必須**: メインキーワード「%s」を自然に導入部に含める", b.MainKeyword())
	}
	if b.HasPurpose() {
		fmt.Fprintf(&s, "\n- **必須**: 記事の目的「%s」を意識した導入にする", b.Purpose)
	}

	fmt.Fprintf(&s, "\n\n2. **本論（%d文字程度）**:\n", budget.Body)
	s.WriteString("- 各キーワードについて、具体的な体験談や事例を交えて説明\n")
	s.WriteString("- 読者のペルソナに合わせた具体的なアドバイスを提供\n")
	s.WriteString("- 一次情報を効果的に活用して説得力を高める")
	if subs := b.SubKeywords(); len(subs) > 0 {
		fmt.Fprintf(&s, "\n- **必須**: サブキーワード「%s」を自然に本論に織り込む", textutil.JoinJa(subs))
	}

	fmt.Fprintf(&s, "\n\n3. **結論（%d文字程度）**:\n", budget.Conclusion)
	s.WriteString("- 記事の要点を簡潔にまとめる\n")
	s.WriteString("- 読者の行動を促す具体的な提案\n")
	s.WriteString("- キャラクターらしい締めくくり")
	if b.HasPurpose() {
		s.WriteString("\n- **必須**: 記事の目的達成を確認できる結論にする")
	}

	s.WriteString("\n\n## 文章作成の必須チェックポイント:\n")
	s.WriteString(textutil.Bullets(
		"**キーワード確認**: 指定されたキーワードがすべて自然に含まれているか",
		"**目的達成確認**: 設定された記事の目的が達成されているか",
		fmt.Sprintf("**文字数確認**: 目標文字数%d文字に達しているか", wc),
		"**キャラクター反映**: 設定されたキャラクターの個性が文章に反映されているか",
		"**読者適合**: 読者のペルソナに適した内容になっているか",
		"**実用性確認**: 具体的で実用的な内容になっているか",
	))

	s.WriteString("\n## 品質保証のための最終確認:\n")
	s.WriteString(textutil.Numbered([]string{
		"記事のタイトルにメインキーワードが含まれているか",
		"各見出しでキーワードが適切に使用されているか",
		"記事の目的が明確に読者に伝わるか",
		"読者が具体的な行動を取れる内容になっているか",
		"設定されたキャラクターらしさが一貫して表現されているか",
	}))

	s.WriteString("\n**絶対厳守**: キーワードと目的は記事の核心部分です。これらを軽視したり省略したりすることは絶対に避けてください。")
	return s.String(), true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
