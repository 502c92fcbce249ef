package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizplay/internal/bank"
)

// tableStyles returns table styles for the theme list.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle().Reverse(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// themeColumns sizes the theme table to the terminal width.
func themeColumns(width int) []table.Column {
	name := 32
	if width > 0 {
		name = max(width-20, 12)
	}
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Theme", Width: name},
		{Title: "Questions", Width: 9},
	}
}

// themeRows lists the bank's themes in source order.
func themeRows(b *bank.Bank) []table.Row {
	if b == nil {
		return nil
	}
	names := b.Themes()
	rows := make([]table.Row, 0, len(names))
	for i, name := range names {
		questions, _ := b.Questions(name)
		rows = append(rows, table.Row{strconv.Itoa(i + 1), name, strconv.Itoa(len(questions))})
	}
	return rows
}
