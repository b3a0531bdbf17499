package optimize

import (
	"fmt"
	"strings"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/textutil"
)

// Develop assembles the optimized prompt from the first two stages. It adds
// no information beyond what the Analysis and Diagnosis already hold.
func Develop(a *Analysis, d *Diagnosis) string {
	technique := Technique(ClassifyRequest(a))

	return textutil.JoinSections(
		enhancedRole(a),
		enhancedContext(a),
		logicalStructure(a, technique),
		preciseOutputSpec(a),
		qualityAssurance(a),
	)
}

// ClassifyRequest picks the request type that selects the writing technique.
func ClassifyRequest(a *Analysis) RequestType {
	if hasPrimaryInfo(a.Context.PrimaryInfo) {
		return RequestCreative
	}
	for _, e := range a.KeyEntities {
		if e.Type == EntityKeyword && textutil.ContainsAny(e.Value, technicalTerms...) {
			return RequestTechnical
		}
	}
	if textutil.ContainsAny(a.CoreIntent, educationalTerms...) {
		return RequestEducational
	}
	if len(a.MissingElements) > 2 || a.Context.WordCount > 5000 {
		return RequestComplex
	}
	return RequestCreative
}

func enhancedRole(a *Analysis) string {
	values := make([]string, len(a.KeyEntities))
	for i, e := range a.KeyEntities {
		values[i] = e.Value
	}
	audience := a.Context.Audience

	return fmt.Sprintf(`# あなたの強化された役割定義

あなたは以下の3つの専門性を併せ持つエキスパートライターです：

## 1. コンテンツ戦略マスター
- %sに特化した戦略的思考
- 読者の行動心理を深く理解し、適切なタイミングで行動を促す能力
- %sの分野における豊富な知見

## 2. ペルソナ・コミュニケーター
- %sの%s読者との深い共感能力
- %sでの自然で魅力的な表現力
- 読者の潜在ニーズを言語化し、解決策を提示する能力

## 3. 構造化ライティングの達人
- %sによる論理的で読みやすい構成力
- %d文字での最適な情報密度の調整
- SEOと読者体験を両立させる高度なバランス感覚

**重要：** これらの専門性を統合し、読者にとって「この人にしか書けない」と感じられる独自性のある記事を作成してください。`,
		a.CoreIntent,
		textutil.JoinJa(values),
		orDefault(audience.Age, "多世代"),
		orDefault(audience.Occupation, "多様な職業"),
		a.Context.Tone,
		a.Context.WritingStyle,
		a.Context.WordCount,
	)
}

func enhancedContext(a *Analysis) string {
	var s strings.Builder
	s.WriteString("# 強化されたコンテキスト設定\n\n")
	s.WriteString("## ターゲット読者の詳細プロファイル\n")
	s.WriteString(readerProfile(a.Context.Audience))
	s.WriteString("\n## コンテンツ戦略\n")
	s.WriteString(contentStrategy(a))
	s.WriteString("\n## 競合優位性の確立\n")
	s.WriteString(competitiveAdvantage(a))
	return s.String()
}

func readerProfile(r brief.ReaderPersona) string {
	return fmt.Sprintf(`**基本属性：**
- 年齢層: %s
- 職業: %s
- 読書環境: %s

**心理的特性：**
- 関心事: %s
- 課題: %s
- 動機: 具体的な解決策と実践可能なアクションを求めている

**コミュニケーション嗜好：**
- 専門用語よりも分かりやすい説明を好む
- 具体例や体験談による説明を重視
- 結論を先に知りたがる傾向（忙しい日常のため）`,
		orDefault(r.Age, "20-40代中心"),
		orDefault(r.Occupation, "多様な職業（会社員、フリーランス、起業家など）"),
		orDefault(r.ReadingStyle, "スマートフォンでの隙間時間読書が中心"),
		orDefault(textutil.JoinJa(r.Interests), "自己成長、効率化、新しい知識習得"),
		orDefault(textutil.JoinJa(r.Challenges), "時間不足、情報過多、実践方法の不明確さ"),
	)
}

func contentStrategy(a *Analysis) string {
	viewpoint := "理論と実践を組み合わせた"
	if a.Context.PrimaryInfo.Facts != "" {
		viewpoint = "実体験に基づく"
	}

	return fmt.Sprintf(`**コンテンツの差別化戦略：**
1. **独自の視点**: %sアプローチ
2. **価値提供**: %sを通じた読者の具体的な変化の創出
3. **エンゲージメント**: %sによる親しみやすさと専門性のバランス

**読者の行動変容設計：**
- 認知段階: 課題の明確化と共感の構築
- 理解段階: 解決策の論理的説明と具体例提示
- 行動段階: 実践可能なステップと継続のモチベーション提供`,
		viewpoint, a.CoreIntent, a.Context.Tone)
}

func competitiveAdvantage(a *Analysis) string {
	basis := "論理的根拠"
	if a.Context.PrimaryInfo.Facts != "" {
		basis = "実体験"
	}

	return fmt.Sprintf(`**他の記事との差別化ポイント：**
1. **具体性**: 抽象論ではなく、実践的で即効性のある内容
2. **共感性**: 読者の立場に立った温かみのある表現
3. **体系性**: %sによる分かりやすい構成
4. **信頼性**: %sに基づく説得力

**避けるべき要素：**
- テンプレート的な表現や定型文
- 表面的なアドバイス
- 読者の課題に対する理解不足を感じさせる内容`,
		a.Context.WritingStyle, basis)
}

func logicalStructure(a *Analysis, technique string) string {
	authority := "専門知識の適切な引用"
	if a.Context.PrimaryInfo.Facts != "" {
		authority = "実体験の具体的描写"
	}

	return fmt.Sprintf(`# 論理構造とライティング技法

## 適用技法: %s

### 構成フレームワーク（%s）

%s

### 説得力強化のテクニック
1. **権威性の確立**: %s
2. **社会証明の活用**: 読者と同じ立場の人の成功例や変化の事例
3. **希少性の演出**: 「多くの人が知らない」「実際に試した人だけが知る」視点
4. **緊急性の創出**: 「今すぐ始められる」「先延ばしのリスク」の言及

### 感情的共感の構築
- **痛みの共感**: 読者の課題に対する深い理解の表現
- **希望の提示**: 解決可能性と明るい未来の描写
- **達成感の演出**: 実践後の充実感や成長の実感`,
		technique,
		a.Context.WritingStyle,
		Framework(a.Context.WritingStyle),
		authority,
	)
}

func preciseOutputSpec(a *Analysis) string {
	mainKeyword := brief.PlaceholderKeyword
	for _, e := range a.KeyEntities {
		if e.Type == EntityKeyword {
			mainKeyword = e.Value
			break
		}
	}

	return fmt.Sprintf(`# 精密な出力仕様

## 品質基準
- **具体性レベル**: 90%%以上（抽象的表現は10%%未満に制限）
- **独自性スコア**: 他の記事では得られない独自の視点や情報を含む
- **実用性指標**: 読者が即座に実践できる具体的アクションを含む
- **感情的共感度**: 読者が「自分のことを理解してくれている」と感じるレベル

## 文章品質要件
- **文字数**: %d文字（±10%%の範囲内）
- **可読性**: 中学生でも理解できる表現（専門用語使用時は必ず説明）
- **リズム**: 長短の文章を適切に組み合わせた読みやすいリズム
- **キーワード密度**: 自然な文脈での適切な頻度（不自然な詰め込み禁止）

## 必須要素チェックリスト
✓ メインキーワード「%s」のタイトル含有
✓ %sの明確な達成
✓ 読者の%sに対する具体的解決策
✓ %sによる一貫した文体
✓ 実践可能な行動指針の提示`,
		a.Context.WordCount,
		mainKeyword,
		a.CoreIntent,
		orDefault(textutil.JoinJa(a.Context.Audience.Challenges), "課題"),
		a.Context.Tone,
	)
}

func qualityAssurance(a *Analysis) string {
	return fmt.Sprintf(`# 品質保証プロトコル

## 最終チェック項目

### コンテンツの価値性
1. **独自性**: 他では得られない情報や視点が含まれているか
2. **実用性**: 読者が実際に活用できる具体的な内容か
3. **完全性**: 読者の疑問に先回りして答えているか

### テクニカル要件
1. **キーワード統合**: 自然な文脈で適切に配置されているか
2. **構成の論理性**: %sによる明確な流れか
3. **文字数の適正性**: %d文字の範囲内か

### 読者体験
1. **共感性**: 読者が「自分のため」と感じられる内容か
2. **実践可能性**: 明日からでも始められる具体的アクションがあるか
3. **継続動機**: 長期的な取り組みへのモチベーションが含まれているか

## 禁止事項
❌ 「重要です」「大切です」などの曖昧な強調
❌ 「〜について説明します」などの定型的表現
❌ 表面的で深みのないアドバイス
❌ 読者の立場を理解していない上から目線の表現

**最終確認**: 上記すべての要件を満たし、「%s」を確実に達成する記事を作成してください。`,
		a.Context.WritingStyle,
		a.Context.WordCount,
		a.CoreIntent,
	)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
