package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
)

func TestPaginationBounds(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		wantPrev    bool
		wantNext    bool
	}{
		{"single page", 1, 1, false, false},
		{"first of many", 1, 3, false, true},
		{"middle", 2, 3, true, true},
		{"last of many", 3, 3, true, false},
		{"empty listing", 1, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &App{currentPage: tt.currentPage, totalPages: tt.totalPages}
			assert.Equal(t, tt.wantPrev, a.canPrev())
			assert.Equal(t, tt.wantNext, a.canNext())
		})
	}
}

func TestRenderNoteLine(t *testing.T) {
	n := models.Note{
		ID:              7,
		Title:           "Groceries",
		CreatorUsername: "alice",
		UpdatedAt:       "2025-03-14T09:26:53.589793Z",
	}
	assert.Equal(t, "[7] Groceries — by alice, updated Mar 14, 2025 09:26", renderNoteLine(n))
}

func TestParseID(t *testing.T) {
	var out bytes.Buffer

	id, ok := parseID(&out, []string{"42"}, "show")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = parseID(&out, nil, "show")
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Usage: show <id>")

	_, ok = parseID(&out, []string{"abc"}, "delete")
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Usage: delete <id>")
}
