package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonalityGuide(t *testing.T) {
	assert.Contains(t, PersonalityGuide("親しみやすい"), "読者を「あなた」と呼び")
	assert.Contains(t, PersonalityGuide("冷静"), "客観的な分析を重視し")
	assert.Equal(t, "個性を文章に反映させる", PersonalityGuide("几帳面"))
	assert.Equal(t, "個性を文章に反映させる", PersonalityGuide(""))
}

func TestReaderLifestage(t *testing.T) {
	tests := []struct {
		name       string
		age        string
		occupation string
		want       string
	}{
		{"nothing", "", "", "多様な背景を持つ読者"},
		{"age only", "40代", "", "責任あるポジションでありながら、次のステップや変化も考えている"},
		{"unknown age", "60代", "", "自己成長を求めている"},
		{"age and engineer", "20代", "Webエンジニア", "キャリア形成の初期段階で、スキルアップと経験を求めている、技術的な詳細と実践的な応用を重視する"},
		{"student", "10代", "学生", "将来への不安と可能性を持ち、自分の進路を模索している、将来のキャリアに役立つ知識やスキルを吸収したい"},
		{"occupation only", "", "広報担当", "、トレンドやデータに基づいた戦略的視点を持つ"},
		{"first marker wins", "30代", "開発営業", "キャリアと私生活のバランスを模索し、専門性を深めたい、技術的な詳細と実践的な応用を重視する"},
		{"unknown occupation", "50代以上", "看護師", "豊富な経験を持ちながらも、新しい時代への適応を意識している、看護師としての専門性と日常の課題解決を両立したい"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReaderLifestage(tt.age, tt.occupation))
		})
	}
}

func TestReadingStyleApproach(t *testing.T) {
	assert.Contains(t, ReadingStyleApproach("スマホで隙間時間"), "簡潔な段落と視覚的な区切り")
	assert.Equal(t, "効率的に価値ある情報を得たい読者", ReadingStyleApproach("音読"))
}

func TestInterestAppeal(t *testing.T) {
	assert.Contains(t, InterestAppeal("投資"), "リスク管理と長期的視点")
	assert.Equal(t, "料理に関する具体的で実用的な情報を提供", InterestAppeal("料理"))
}

func TestChallengeApproach(t *testing.T) {
	assert.Contains(t, ChallengeApproach("情報過多"), "「情報の海に溺れそうですよね」")
	assert.Equal(t,
		"「英語は本当に大変ですよね」と共感しつつ、段階的に克服するための具体的方法を提案",
		ChallengeApproach("英語"))
}

func TestEmojiGuide(t *testing.T) {
	assert.Equal(t, "絵文字は一切使用しない", EmojiGuide("none"))
	assert.Equal(t, EmojiGuide("moderate"), EmojiGuide(""))
	assert.Equal(t, EmojiGuide("moderate"), EmojiGuide("lots"))
}

func TestStructureOutline(t *testing.T) {
	for _, name := range []string{"prep", "story", "problem-solution", "how-to", "comparison"} {
		assert.Len(t, StructureOutline(name), 4, name)
	}
	assert.Equal(t, StructureOutline("prep"), StructureOutline("unknown"))
	assert.Equal(t, "**状況設定**: 読者の関心を引く導入部", StructureOutline("story")[0])
}
