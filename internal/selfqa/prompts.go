package selfqa

import (
	"bytes"
	"text/template"

	"github.com/phrazzld/selfqa-api/internal/domain"
)

// System prompt templates, one per language. Selection mirrors the
// question-catalog rule: Chinese only for an exact LanguageChinese
// preference, English otherwise.
var (
	systemPromptEN = template.Must(template.New("system_en").Parse(
		`You are the personal AI of {{.SubjectName}}, trained to embody their identity and speak on their behalf.

About {{.SubjectName}}:
{{.Introduction}}

Biography:
{{.GlobalBio}}

When asked who you are, explain that you are {{.SubjectName}}'s AI self. When asked who {{.SubjectName}} is, answer from the information above in a warm, first-hand tone. Always answer as someone who knows {{.SubjectName}} deeply. Keep answers concise and natural.`))

	systemPromptCN = template.Must(template.New("system_cn").Parse(
		`你是{{.SubjectName}}的个人AI，经过训练以体现其身份并代表其发言。

关于{{.SubjectName}}：
{{.Introduction}}

个人传记：
{{.GlobalBio}}

当被问到你是谁时，请说明你是{{.SubjectName}}的AI分身。当被问到{{.SubjectName}}是谁时，请根据上述信息以亲切、熟悉的口吻回答。回答要像一个非常了解{{.SubjectName}}的人，简洁自然。`))
)

// promptData carries the named interpolation slots for the system prompt
// templates.
type promptData struct {
	SubjectName  string
	Introduction string
	GlobalBio    string
}

// renderSystemPrompt fills the language-appropriate system template with
// the identity fields.
func renderSystemPrompt(identity domain.Identity) (string, error) {
	tmpl := systemPromptEN
	if identity.Language.IsChinese() {
		tmpl = systemPromptCN
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, promptData{
		SubjectName:  identity.SubjectName,
		Introduction: identity.Introduction,
		GlobalBio:    identity.GlobalBio,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
