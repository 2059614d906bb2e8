package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
)

// list loads page 1 of the plain listing and resets the view mode.
func (a *App) list(ctx context.Context) {
	a.view = viewList
	a.searchQuery = ""
	a.filterTitle = ""
	a.loadPage(ctx, 1)
}

// search starts a new full-text query; a changed term always resets to
// page 1.
func (a *App) search(ctx context.Context, query string) {
	if query == "" {
		fmt.Fprintln(a.out, "Usage: search <query>")
		return
	}
	a.view = viewSearch
	a.searchQuery = query
	a.loadPage(ctx, 1)
}

// filter starts a new title filter; a changed term always resets to page 1.
func (a *App) filter(ctx context.Context, title string) {
	if title == "" {
		fmt.Fprintln(a.out, "Usage: filter <title>")
		return
	}
	a.view = viewFilter
	a.filterTitle = title
	a.loadPage(ctx, 1)
}

// nextPage steps forward; disabled at the last page.
func (a *App) nextPage(ctx context.Context) {
	if !a.canNext() {
		fmt.Fprintln(a.out, "Already on the last page")
		return
	}
	a.loadPage(ctx, a.currentPage+1)
}

// prevPage steps back; disabled at page 1.
func (a *App) prevPage(ctx context.Context) {
	if !a.canPrev() {
		fmt.Fprintln(a.out, "Already on the first page")
		return
	}
	a.loadPage(ctx, a.currentPage-1)
}

// loadPage fetches the requested page of whichever listing is active and,
// on success, advances the pagination state.
func (a *App) loadPage(ctx context.Context, page int) {
	var (
		result models.Page[models.Note]
		err    error
	)

	switch a.view {
	case viewSearch:
		result, err = a.notes.Search(ctx, a.searchQuery, page)
	case viewFilter:
		result, err = a.notes.Filter(ctx, a.filterTitle, page)
	default:
		result, err = a.notes.List(ctx, page)
	}

	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}

	a.currentPage = page
	a.totalPages = result.TotalPages()

	if len(result.Results) == 0 {
		fmt.Fprintln(a.out, "No notes found")
		return
	}

	for _, note := range result.Results {
		fmt.Fprintln(a.out, renderNoteLine(note))
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d notes)\n", a.currentPage, a.totalPages, result.Count)
}

func renderNoteLine(n models.Note) string {
	return fmt.Sprintf("[%d] %s — by %s, updated %s", n.ID, n.Title, n.CreatorUsername, n.FormattedUpdatedAt())
}

func (a *App) show(ctx context.Context, id int) {
	note, err := a.notes.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}

	fmt.Fprintf(a.out, "[%d] %s\n", note.ID, note.Title)
	fmt.Fprintln(a.out, note.Description)
	if note.CreatorName != "" {
		fmt.Fprintf(a.out, "Created by %s (%s)\n", note.CreatorName, note.CreatorUsername)
	} else {
		fmt.Fprintf(a.out, "Created by %s\n", note.CreatorUsername)
	}
	fmt.Fprintf(a.out, "Created %s, updated %s\n", note.FormattedCreatedAt(), note.FormattedUpdatedAt())
}

func (a *App) add(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	description, err := GetMultiline(a.reader, "Enter description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	note, err := a.notes.Create(ctx, models.CreateNoteRequest{Title: title, Description: description})
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}
	fmt.Fprintf(a.out, "Created note %d\n", note.ID)
}

func (a *App) edit(ctx context.Context, id int) {
	current, err := a.notes.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Enter title [%s]", current.Title), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if title == "" {
		title = current.Title
	}

	description, err := GetMultiline(a.reader, "Enter description (empty keeps current)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if description == "" {
		description = current.Description
	}

	// PUT is a full replace
	note, err := a.notes.Update(ctx, id, models.UpdateNoteRequest{Title: title, Description: description})
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}
	fmt.Fprintf(a.out, "Updated note %d\n", note.ID)
}

func (a *App) delete(ctx context.Context, id int) {
	msg, err := a.notes.Delete(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}
	fmt.Fprintln(a.out, msg.Detail)
}

func (a *App) bulk(ctx context.Context) {
	var reqs []models.CreateNoteRequest

	for {
		title, err := GetSimpleText(a.reader, "Enter title (empty to finish)", a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		if title == "" {
			break
		}
		description, err := GetMultiline(a.reader, "Enter description", a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		reqs = append(reqs, models.CreateNoteRequest{Title: title, Description: description})
	}

	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "Nothing to create")
		return
	}

	notes, err := a.notes.BulkCreate(ctx, reqs)
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}
	fmt.Fprintf(a.out, "Created %d notes\n", len(notes))
}
