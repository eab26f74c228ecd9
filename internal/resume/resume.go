// Package resume holds the profile shown on the page and turns it into the
// plain-text context sent along with visitor questions.
package resume

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompts/context.tmpl
var contextPromptRaw string

//go:embed prompts/question.tmpl
var questionPromptRaw string

var funcs = template.FuncMap{"join": strings.Join, "collapse": collapse}

// Parsed once at package init.
var (
	contextTemplate  = template.Must(template.New("context").Funcs(funcs).Parse(contextPromptRaw))
	questionTemplate = template.Must(template.New("question").Parse(questionPromptRaw))
)

type SkillGroup struct {
	Name  string
	Items []string
}

type Job struct {
	Role       string
	Company    string
	Period     string
	LogoPath   string
	Highlights []string
}

// Section is a sub-heading inside an expanded project card.
type Section struct {
	Heading    string
	Paragraphs []string
	Items      []string
}

// Project is one expandable card in the projects grid.
type Project struct {
	Title    string
	Summary  string
	Sections []Section
}

// Transcript flattens the card into markdown-like lines: the title, the
// summary, then each section heading followed by its paragraphs and list
// items. Empty entries are skipped.
func (p Project) Transcript() string {
	var lines []string
	add := func(prefix, s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			lines = append(lines, prefix+collapse(s))
		}
	}

	add("## ", p.Title)
	add("", p.Summary)
	for _, sec := range p.Sections {
		add("### ", sec.Heading)
		for _, para := range sec.Paragraphs {
			add("", para)
		}
		for _, item := range sec.Items {
			add("- ", item)
		}
	}
	return strings.Join(lines, "\n")
}

// Profile is the resume content rendered on the page.
type Profile struct {
	Name     string
	Headline string
	Bio      string
	About    string

	Skills     []SkillGroup
	Experience []Job
	Projects   []Project

	// Titles cycled by the hero typewriter.
	Titles []string
}

// FirstName is used when addressing the assistant persona.
func (p Profile) FirstName() string {
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return fields[0]
	}
	return p.Name
}

// Context renders the resume transcript handed to the text collaborator.
func (p Profile) Context() (string, error) {
	var buf bytes.Buffer
	if err := contextTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render resume context: %w", err)
	}
	return buf.String(), nil
}

// Prompt appends a visitor question to the resume transcript.
func (p Profile) Prompt(question string) (string, error) {
	ctx, err := p.Context()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString(ctx)
	err = questionTemplate.Execute(&buf, struct {
		Assistant string
		Question  string
	}{p.FirstName(), strings.TrimSpace(question)})
	if err != nil {
		return "", fmt.Errorf("render question prompt: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// collapse folds the indentation of multi-line Go raw strings into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
