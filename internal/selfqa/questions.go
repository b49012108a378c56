package selfqa

import (
	"fmt"

	"github.com/phrazzld/selfqa-api/internal/domain"
)

// genericQuestionsEN probes the model's notion of the subject's identity
// and of its own role. The catalog is fixed; order matters only in that
// the generated question list is deterministic for a given identity.
var genericQuestionsEN = []string{
	"Who am I?",
	"How would you describe who I am?",
	"What makes me, me?",
	"If you had to sum me up, who would I be?",
	"What do you see when you think of me?",
	"What defines who I am?",
	"How would you explain my personality?",
	"Can you help me understand who I really am?",
	"Who are you?",
	"Can you tell me about yourself?",
	"What's your purpose or role here?",
	"How would you define yourself?",
	"If someone asked, how would you describe who you are?",
	"What makes you unique or different?",
	"What's your background or origin?",
	"Could you explain what you are and what you do?",
}

// bindingQuestionsEN bind the subject's name into the session. The %s slot
// receives the subject name verbatim; the name is trusted operator input
// and is not escaped.
var bindingQuestionsEN = []string{
	"Have you heard of %s before?",
	"Are you familiar with %s?",
	"Do you happen to know who %s is?",
	"Have you come across %s?",
	"Is %s someone you know?",
	"Do you recognize the name %s?",
	"Does %s ring a bell for you?",
}

var genericQuestionsCN = []string{
	"我是谁？",
	"你会如何描述我是谁？",
	"是什么让我成为现在的我？",
	"如果你要总结我是谁，我会是一个怎样的人？",
	"当你想到我时，你会看到什么？",
	"什么定义了我是谁？",
	"你会如何解释我的个性？",
	"你能帮助我了解真正的自己吗？",
	"你是谁？",
	"你能介绍一下自己吗？",
	"你的目的或角色是什么？",
	"你会如何定义自己？",
	"如果有人问起，你会如何描述你是谁？",
	"是什么让你独特或与众不同？",
	"你的背景或起源是什么？",
	"你能解释一下你是什么以及你做什么吗？",
}

var bindingQuestionsCN = []string{
	"你听说过%s吗？",
	"你对%s熟悉吗？",
	"你知道%s是谁吗？",
	"你碰巧听说过%s吗？",
	"%s是你认识的人吗？",
	"你认得%s这个名字吗？",
	"%s这个名字对你来说有印象吗？",
}

// QuestionSet builds the full ordered question list for an identity:
// the generic catalog first, then the subject-binding catalog with the
// subject name interpolated. The Chinese catalogs are used only when the
// identity's language preference is exactly LanguageChinese; any other
// value, including an unrecognized tag, falls back to English.
//
// The function is pure and cannot fail.
func QuestionSet(identity domain.Identity) []string {
	generic := genericQuestionsEN
	binding := bindingQuestionsEN
	if identity.Language.IsChinese() {
		generic = genericQuestionsCN
		binding = bindingQuestionsCN
	}

	questions := make([]string, 0, len(generic)+len(binding))
	questions = append(questions, generic...)
	for _, tmpl := range binding {
		questions = append(questions, fmt.Sprintf(tmpl, identity.SubjectName))
	}

	return questions
}
