package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"task-tracker/internal/domain"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func renderHeader(page domain.Page) string {
	return headerStyle.Render(fmt.Sprintf("== %s ==", page))
}

func renderHint(names []string) string {
	return "Commands: " + strings.Join(names, ", ")
}

func renderStats(stats domain.TaskStats) string {
	return fmt.Sprintf("You have %s: %d pending, %d done.",
		english.Plural(stats.Total, "task", ""), stats.Pending, stats.Done)
}

// renderReminder is the due today notice; it never blocks the shell
func renderReminder(due []*domain.Task) string {
	if len(due) == 0 {
		return "No tasks due today."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Reminder: %s due today:", english.Plural(len(due), "task", ""))
	for _, task := range due {
		fmt.Fprintf(&b, "\n  - %s [%s] (%s)", task.Description, task.Category, task.Status)
	}
	return b.String()
}

// renderTaskTable prints tasks in store order
func renderTaskTable(tasks []*domain.Task, dateFormat string) string {
	if dateFormat == "" {
		dateFormat = domain.DateLayout
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTask\tCategory\tDue Date\tStatus")
	for _, task := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			task.ID, task.Description, task.Category, task.DueDate.Format(dateFormat), task.Status)
	}
	w.Flush()
	return b.String()
}
