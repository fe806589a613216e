package prompt

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/openimpact/impacteval/internal/model"
)

// Render interpolates a prompt spec into chat messages. Empty rendered
// texts are dropped, so a spec without a system template yields a single
// user message.
func Render(spec model.PromptSpec, vars map[string]any) []model.Message {
	systemText := renderTemplate(spec.SystemTemplate, vars)
	userText := renderTemplate(spec.UserTemplate, vars)

	var messages []model.Message
	if systemText != "" {
		messages = append(messages, model.Message{Role: model.RoleSystem, Content: systemText})
	}
	if userText != "" {
		messages = append(messages, model.Message{Role: model.RoleUser, Content: userText})
	}
	return messages
}

// renderTemplate executes one template string. Undefined variables render
// as empty rather than failing: templates may reference optional metadata.
// A template that does not parse falls back to literal substitution.
func renderTemplate(tmpl string, vars map[string]any) string {
	if tmpl == "" {
		return ""
	}

	t, err := template.New("prompt").Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return substitute(tmpl, vars)
	}

	// Absent keys are pre-filled with empty strings. Scrubbing the default
	// "<no value>" marker from the output instead would also mangle
	// artifact text that happens to contain it.
	data := make(map[string]any, len(vars))
	for k, v := range vars {
		data[k] = v
	}
	for _, m := range varPattern.FindAllStringSubmatch(tmpl, -1) {
		if _, ok := data[m[1]]; !ok {
			data[m[1]] = ""
		}
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return substitute(tmpl, vars)
	}

	return strings.TrimSpace(buf.String())
}

var varPattern = regexp.MustCompile(`\{\{-?\s*\.?(\w+)\s*-?\}\}`)
var blockPattern = regexp.MustCompile(`\{\{-?\s*(if|else|end|range|with)\b[^}]*\}\}`)

// substitute is the zero-dependency fallback: literal {{ var }} markers are
// replaced from vars, block tags are stripped.
func substitute(tmpl string, vars map[string]any) string {
	out := blockPattern.ReplaceAllString(tmpl, "")
	out = varPattern.ReplaceAllStringFunc(out, func(match string) string {
		name := varPattern.FindStringSubmatch(match)[1]
		if v, ok := vars[name]; ok {
			return fmt.Sprint(v)
		}
		return ""
	})
	return strings.TrimSpace(out)
}
