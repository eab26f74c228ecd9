package chat

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

var (
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)
	listPattern = regexp.MustCompile(`(?m)^\* (.*)$`)
)

// Format renders the light markdown used in replies: **bold** becomes
// <strong>, lines starting with "* " become list items, and any list items
// wrap the whole message in a <ul>. Everything else is escaped.
func Format(text string) template.HTML {
	s := html.EscapeString(text)
	s = boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = listPattern.ReplaceAllString(s, "<li>$1</li>")
	if strings.Contains(s, "<li>") {
		s = "<ul>" + s + "</ul>"
	}
	return template.HTML(s)
}
