package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notesServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *NotesClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	nc := NewNotesClient(NewClient(srv.URL), staticTokens{token: "tok"})
	return srv, nc
}

func TestNotesClient_List(t *testing.T) {
	_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/notes/", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(models.Page[models.Note]{
			Count:   13,
			Results: []models.Note{{ID: 7, Title: "T", CreatorUsername: "alice"}},
		})
	})

	page, err := nc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 13, page.Count)
	assert.Equal(t, 3, page.TotalPages())
	require.Len(t, page.Results, 1)
	assert.Equal(t, 7, page.Results[0].ID)
}

func TestNotesClient_OmitsBearerWhenNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// absence of a token omits the header entirely; auth is the server's call
		require.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Authentication credentials were not provided."}`))
	}))
	defer srv.Close()

	nc := NewNotesClient(NewClient(srv.URL), staticTokens{})
	_, err := nc.List(context.Background(), 1)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestNotesClient_CreateRoundTrip(t *testing.T) {
	_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/notes/", r.URL.Path)

		var req models.CreateNoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Note{
			ID:              42,
			Title:           req.Title,
			Description:     req.Description,
			CreatedAt:       "2025-03-14T09:26:53.589793Z",
			UpdatedAt:       "2025-03-14T09:26:53.589793Z",
			CreatorUsername: "alice",
		})
	})

	note, err := nc.Create(context.Background(), models.CreateNoteRequest{Title: "T", Description: "D"})
	require.NoError(t, err)
	assert.Equal(t, "T", note.Title)
	assert.Equal(t, "D", note.Description)
	assert.NotZero(t, note.ID)
	assert.NotEmpty(t, note.CreatedAt)
	assert.NotEmpty(t, note.UpdatedAt)
}

func TestNotesClient_Update(t *testing.T) {
	_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/notes/9/", r.URL.Path)
		json.NewEncoder(w).Encode(models.Note{ID: 9, Title: "new", CreatorUsername: "alice"})
	})

	note, err := nc.Update(context.Background(), 9, models.UpdateNoteRequest{Title: "new", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, "new", note.Title)
}

func TestNotesClient_Delete(t *testing.T) {
	t.Run("204 empty body synthesizes a message", func(t *testing.T) {
		_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/notes/42/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		msg, err := nc.Delete(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "Note deleted successfully", msg.Detail)
	})

	t.Run("200 with detail body is decoded", func(t *testing.T) {
		_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.MessageResponse{Detail: "gone"})
		})

		msg, err := nc.Delete(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "gone", msg.Detail)
	})

	t.Run("404", func(t *testing.T) {
		_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Not found."}`))
		})

		_, err := nc.Delete(context.Background(), 42)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNotesClient_BulkCreate(t *testing.T) {
	_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/notes/bulk", r.URL.Path)

		var reqs []models.CreateNoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqs))
		require.Len(t, reqs, 2)

		notes := make([]models.Note, len(reqs))
		for i, req := range reqs {
			notes[i] = models.Note{ID: i + 1, Title: req.Title, CreatorUsername: "alice"}
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(notes)
	})

	notes, err := nc.BulkCreate(context.Background(), []models.CreateNoteRequest{
		{Title: "a"}, {Title: "b"},
	})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "b", notes[1].Title)
}

func TestNotesClient_SearchEncodesQuery(t *testing.T) {
	var rawQuery string
	_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/notes/search", r.URL.Path)
		rawQuery = r.URL.RawQuery
		require.Equal(t, "proj ideas", r.URL.Query().Get("q"))
		require.Equal(t, "1", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(models.Page[models.Note]{Count: 0})
	})

	_, err := nc.Search(context.Background(), "proj ideas", 1)
	require.NoError(t, err)
	// the space never travels raw
	assert.NotContains(t, rawQuery, " ")
}

func TestNotesClient_Filter(t *testing.T) {
	_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/notes/filter", r.URL.Path)
		require.Equal(t, "groceries & chores", r.URL.Query().Get("title"))
		json.NewEncoder(w).Encode(models.Page[models.Note]{Count: 6, Results: []models.Note{}})
	})

	page, err := nc.Filter(context.Background(), "groceries & chores", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages())
}

func TestNotesClient_FilterWithoutTitleOmitsParam(t *testing.T) {
	_, nc := notesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["title"]
		require.False(t, present)
		json.NewEncoder(w).Encode(models.Page[models.Note]{})
	})

	_, err := nc.Filter(context.Background(), "", 1)
	require.NoError(t, err)
}
