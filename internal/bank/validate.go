package bank

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

func themeField(name string) string {
	return fmt.Sprintf("themes[%q]", name)
}

func questionField(theme string, index int) string {
	return fmt.Sprintf("%s[%d]", themeField(theme), index)
}

// checkThemeSet validates properties spanning all themes.
func (collector *issueCollector) checkThemeSet(themes []Theme) {
	if len(themes) == 0 {
		collector.add("themes", "must include at least one theme")
	}
	seen := map[string]struct{}{}
	for _, theme := range themes {
		if _, exists := seen[theme.Name]; exists {
			collector.add(themeField(theme.Name), "duplicate theme")
			continue
		}
		seen[theme.Name] = struct{}{}
	}
}

func (collector *issueCollector) checkThemeHeader(name string, questionCount int) {
	if strings.TrimSpace(name) == "" {
		collector.add(themeField(name), "name is required")
	}
	if questionCount == 0 {
		collector.add(themeField(name), "must include at least one question")
	}
}

func (collector *issueCollector) checkTheme(theme Theme) {
	collector.checkThemeHeader(theme.Name, len(theme.Questions))
	for i, question := range theme.Questions {
		collector.checkQuestion(questionField(theme.Name, i), question)
	}
}

func (collector *issueCollector) checkQuestion(prefix string, question Question) {
	if question == nil {
		collector.add(prefix, "is required")
		return
	}
	if strings.TrimSpace(question.Prompt()) == "" {
		collector.add(prefix+".question", "is required")
	}
	switch q := question.(type) {
	case MultipleChoice:
		if len(q.Options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}
		seen := map[string]struct{}{}
		for i, option := range q.Options {
			field := fmt.Sprintf("%s.options[%d]", prefix, i)
			if strings.TrimSpace(option) == "" {
				collector.add(field, "is required")
				continue
			}
			if _, exists := seen[option]; exists {
				collector.add(field, fmt.Sprintf("duplicate option %q", option))
				continue
			}
			seen[option] = struct{}{}
		}
		if strings.TrimSpace(q.Correct) == "" {
			collector.add(prefix+".answer", "is required")
		} else if _, ok := seen[q.Correct]; !ok {
			collector.add(prefix+".answer", fmt.Sprintf("unknown option %q", q.Correct))
		}
	case Vocab:
		if strings.TrimSpace(q.Answer) == "" {
			collector.add(prefix+".answer", "is required")
		}
	case AdjectiveOrder:
		if len(q.Order) < 2 {
			collector.add(prefix+".answer", "must include at least two words")
		}
		for i, word := range q.Order {
			if strings.TrimSpace(word) == "" {
				collector.add(fmt.Sprintf("%s.answer[%d]", prefix, i), "is required")
			}
		}
	case Conditional:
		if strings.TrimSpace(q.Answer) == "" {
			collector.add(prefix+".answer", "is required")
		}
		if !q.Degree.Valid() {
			collector.add(prefix+".degree", "must be one of 0, 1, 2, 3")
		}
	default:
		collector.add(prefix+".type", fmt.Sprintf("unsupported question %T", question))
	}
}
