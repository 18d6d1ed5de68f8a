package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"wall/cli/internal/backend"
	"wall/cli/internal/logging"
	"wall/cli/internal/query"
)

// Renderer prints command results to the terminal.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer { return &Renderer{out: out} }

// Failure prints a failed query. transport marks a network failure.
func (r *Renderer) Failure(action string, snap Snapshot, transport bool) {
	fmt.Fprint(r.out, logging.FormatFailure(action, snap.ErrMsg, transport))
}

// Cancelled prints the note shown when the user aborted a call.
func (r *Renderer) Cancelled(action string) {
	fmt.Fprintln(r.out, pterm.NewStyle(pterm.FgGray).Sprintf("Cancelled %s", action))
}

// Success prints a one-line confirmation.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, pterm.NewStyle(pterm.FgGreen).Sprint("✓ ")+msg)
}

// User prints an account.
func (r *Renderer) User(u backend.User) {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	rows := pterm.TableData{
		{"ID", strconv.FormatInt(u.ID, 10)},
		{"Username", u.Username},
	}
	if u.Email != "" {
		rows = append(rows, []string{"Email", u.Email})
	}
	if name != "" {
		rows = append(rows, []string{"Name", name})
	}
	s, err := pterm.DefaultTable.WithData(rows).Srender()
	if err != nil {
		fmt.Fprintf(r.out, "%s (%d)\n", u.Username, u.ID)
		return
	}
	fmt.Fprintln(r.out, s)
}

// Posts prints one page of posts and, when known, the page position.
func (r *Renderer) Posts(posts []backend.Post, p *query.Pagination) {
	if len(posts) == 0 {
		fmt.Fprintln(r.out, "The wall is empty.")
		return
	}
	rows := pterm.TableData{{"ID", "Author", "Posted", "Content", "Comments"}}
	for _, post := range posts {
		posted := ""
		if post.CreatedAt != nil {
			posted = post.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			strconv.FormatInt(post.ID, 10),
			string(post.Author),
			posted,
			postText(post),
			strconv.Itoa(len(post.Comments)),
		})
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		for _, row := range rows[1:] {
			fmt.Fprintln(r.out, strings.Join(row, "  "))
		}
	} else {
		fmt.Fprintln(r.out, s)
	}
	if p != nil {
		fmt.Fprintln(r.out, pageLine(*p))
	}
}

func postText(p backend.Post) string {
	text := p.Content
	if p.Title != "" {
		text = p.Title + ": " + text
	}
	if len([]rune(text)) > 60 {
		text = string([]rune(text)[:57]) + "..."
	}
	return text
}

func pageLine(p query.Pagination) string {
	line := fmt.Sprintf("Page %d", p.Page)
	if p.TotalPages > 0 {
		line += fmt.Sprintf(" of %d", p.TotalPages)
	}
	line += fmt.Sprintf(" · %d posts", p.Total)
	if p.Next != nil && *p.Next != "" {
		line += fmt.Sprintf(" · next: --page %d", p.Page+1)
	}
	return pterm.NewStyle(pterm.FgGray).Sprint(line)
}
