package selfqa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/selfqa-api/internal/domain"
)

func TestQuestionSet_English(t *testing.T) {
	identity := domain.Identity{
		SubjectName: "Ada",
		Language:    domain.LanguageEnglish,
	}

	questions := QuestionSet(identity)

	require.Len(t, questions, len(genericQuestionsEN)+len(bindingQuestionsEN))
	assert.Len(t, questions, 23)

	// Generic catalog first, in catalog order.
	for i, q := range genericQuestionsEN {
		assert.Equal(t, q, questions[i])
	}

	// Binding questions carry the subject name verbatim.
	binding := questions[len(genericQuestionsEN):]
	require.Len(t, binding, 7)
	for _, q := range binding {
		assert.Contains(t, q, "Ada")
	}
}

func TestQuestionSet_Chinese(t *testing.T) {
	identity := domain.Identity{
		SubjectName: "小明",
		Language:    domain.LanguageChinese,
	}

	questions := QuestionSet(identity)

	require.Len(t, questions, len(genericQuestionsCN)+len(bindingQuestionsCN))
	assert.Equal(t, genericQuestionsCN[0], questions[0])

	binding := questions[len(genericQuestionsCN):]
	for _, q := range binding {
		assert.Contains(t, q, "小明")
	}
}

func TestQuestionSet_DefaultsToEnglishForUnrecognizedLanguage(t *testing.T) {
	// Anything that is not exactly the Chinese marker must fall back to
	// English, including empty and unrecognized tags.
	tests := []struct {
		name     string
		language domain.LanguagePreference
	}{
		{name: "empty", language: ""},
		{name: "explicit english", language: domain.LanguageEnglish},
		{name: "lowercase chinese tag", language: "chinese"},
		{name: "bcp47 tag", language: "zh-CN"},
		{name: "unknown language", language: "Klingon"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			identity := domain.Identity{SubjectName: "Ada", Language: tc.language}
			questions := QuestionSet(identity)

			require.Len(t, questions, 23)
			assert.Equal(t, genericQuestionsEN[0], questions[0])
			assert.Contains(t, questions[len(questions)-1], "Ada")
		})
	}
}

func TestQuestionSet_IsDeterministic(t *testing.T) {
	identity := domain.Identity{SubjectName: "Ada", Language: domain.LanguageEnglish}

	first := QuestionSet(identity)
	second := QuestionSet(identity)

	assert.Equal(t, first, second)
}

func TestQuestionSet_SubjectNameNotEscaped(t *testing.T) {
	// The subject name is trusted operator input and is interpolated
	// verbatim, format verbs and all.
	identity := domain.Identity{SubjectName: "O'Brien <x>", Language: domain.LanguageEnglish}

	questions := QuestionSet(identity)

	found := false
	for _, q := range questions {
		if strings.Contains(q, "O'Brien <x>") {
			found = true
		}
	}
	assert.True(t, found, "subject name should appear verbatim in binding questions")
}
