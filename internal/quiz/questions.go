package quiz

// defaultQuestions is the identity quiz question set. Questions 5 and 7
// intentionally score romantic_target only, feeding the label table
// rather than the four code axes.
var defaultQuestions = []Question{
	{
		ID:   1,
		Text: "태어날 때 지정받은 성별이 나는...",
		Options: []Option{
			{ID: "a", Text: "별 생각 없는데? 그냥 이게 내 성별인 것 같아.", Scores: []Contribution{{Category: CategoryGenderAlignment, Value: -1}}},
			{ID: "b", Text: "가끔 이게 내 성별이 아닌 것 같다는 생각이 들 때가 있어.", Scores: []Contribution{{Category: CategoryGenderAlignment, Value: 1}}},
			{ID: "c", Text: "불편해. 이 몸과 성별은 내가 아닌 것 같을 때가 많아.", Scores: []Contribution{{Category: CategoryGenderAlignment, Value: 2}}},
		},
	},
	{
		ID:   2,
		Text: "누군가 나를 지칭한다면, 나는 나를 \"______\"라고 지칭해주면 좋겠어.",
		Options: []Option{
			{ID: "a", Text: "그녀/She", Scores: []Contribution{{Category: CategoryGenderAlignment, Value: -1}}},
			{ID: "b", Text: "그/He", Scores: []Contribution{{Category: CategoryGenderAlignment, Value: -1}}},
			{ID: "c", Text: "그들/They 혹은 혼합형", Scores: []Contribution{{Category: CategoryGenderAlignment, Value: 2}}},
		},
	},
	{
		ID:   3,
		Text: "내 성별을 내가 자유롭게 정할 수 있다면 나는...",
		Options: []Option{
			{ID: "a", Text: "그래도 그냥 이대로가 좋아.", Scores: []Contribution{{Category: CategoryGenderAlignment, Value: -1}}},
			{ID: "b", Text: "아마도 바꿀 수 있을 것 같아.", Scores: []Contribution{{Category: CategoryGenderAlignment, Value: 2}}},
		},
	},
	{
		ID:   4,
		Text: "콩닥콩닥! 로맨틱한 끌림을 느끼는 정도를 표현하면 나는...",
		Options: []Option{
			{ID: "a", Text: "5", Scores: []Contribution{{Category: CategoryRomanticAttraction, Value: 3}}},
			{ID: "b", Text: "4", Scores: []Contribution{{Category: CategoryRomanticAttraction, Value: 2}}},
			{ID: "c", Text: "3", Scores: []Contribution{{Category: CategoryRomanticAttraction, Value: 1}}},
			{ID: "d", Text: "2", Scores: []Contribution{{Category: CategoryRomanticAttraction, Value: -1}}},
			{ID: "e", Text: "1", Scores: []Contribution{{Category: CategoryRomanticAttraction, Value: -2}}},
			{ID: "f", Text: "0", Scores: []Contribution{{Category: CategoryRomanticAttraction, Value: -3}}},
		},
	},
	{
		ID:   5,
		Text: "어느날, 첫눈에 반한 상대가 나타났다. 그 상대는...",
		Options: []Option{
			{ID: "a", Text: "시원시원한 웃음이 매력적인 여성", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 1}}},
			{ID: "b", Text: "따뜻한 배려가 몸에 벤 남성", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 2}}},
			{ID: "c", Text: "내가 떨어뜨린 연필을 주워준... 누군가?", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 3}}},
			{ID: "d", Text: "내 이상형에 딱 부합하는 외계인", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 4}}},
			{ID: "e", Text: "그런것보다, 나는 내 취미가 더 좋아.", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 0}}},
		},
	},
	{
		ID:   6,
		Text: "성적 끌림을 나는...",
		Options: []Option{
			{ID: "a", Text: "자주 느낀다", Scores: []Contribution{{Category: CategorySexualAttraction, Value: 2}}},
			{ID: "b", Text: "가끔 느낀다", Scores: []Contribution{{Category: CategorySexualAttraction, Value: 1}}},
			{ID: "c", Text: "거의 느끼지 않는다", Scores: []Contribution{{Category: CategorySexualAttraction, Value: -2}}},
		},
	},
	{
		ID:   7,
		Text: "왠지 얼굴이 뜨거워지게 만드는 누군가의 등장. 그 상대는...",
		Options: []Option{
			{ID: "a", Text: "향긋한 샴푸향을 남기고 간 여성", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 1}}},
			{ID: "b", Text: "큰 키로 햇빛을 가려주는 남성", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 2}}},
			{ID: "c", Text: "체육부의 에이스로 불리는 ... 누군가?", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 3}}},
			{ID: "d", Text: "내 이상형에 딱 부합하는 외계인", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 4}}},
			{ID: "e", Text: "그런것보다, 나는 내 취미가 더 좋아.", Scores: []Contribution{{Category: CategoryRomanticTarget, Value: 0}}},
		},
	},
	{
		ID:   8,
		Text: "일상에서 내가 즐겨 입는 옷은...",
		Options: []Option{
			{ID: "a", Text: "페미닌, 매니쉬 룩으로 불리는 옷들", Scores: []Contribution{{Category: CategoryExpression, Value: -1}}},
			{ID: "b", Text: "요즘은 유니섹스가 대세야! 중성적이고 펑퍼짐한 옷들", Scores: []Contribution{{Category: CategoryExpression, Value: 2}}},
		},
	},
	{
		ID:   9,
		Text: "성별을 넘나드는 표현(예: 코스프레, 분장)에 대해...",
		Options: []Option{
			{ID: "a", Text: "흥미롭고 즐거워!", Scores: []Contribution{{Category: CategoryExpression, Value: 2}}},
			{ID: "b", Text: "그럴 수도 있지 뭐.", Scores: []Contribution{{Category: CategoryExpression, Value: 0}}},
			{ID: "c", Text: "나는 안입을래.", Scores: []Contribution{{Category: CategoryExpression, Value: -1}}},
		},
	},
	{
		ID:   10,
		Text: "나는 동시에 여러 사람에게 호감이나 사랑을 느껴본 적이...",
		Options: []Option{
			{ID: "a", Text: "있다.", Scores: []Contribution{{Category: CategoryRelationshipOpenness, Value: 1}}},
			{ID: "b", Text: "없다.", Scores: []Contribution{{Category: CategoryRelationshipOpenness, Value: 0}}},
		},
	},
}

// DefaultCatalog builds the built-in identity quiz question catalog.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(defaultQuestions)
}
