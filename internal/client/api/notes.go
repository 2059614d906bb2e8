package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
)

// NotesClient is the typed wrapper over the executor for the notes resource.
// Every call attaches a bearer header sourced from tokens; when no token is
// stored the header is simply omitted and the server rejects the call.
type NotesClient struct {
	c      *Client
	tokens TokenSource
}

func NewNotesClient(c *Client, tokens TokenSource) *NotesClient {
	return &NotesClient{c: c, tokens: tokens}
}

func (n *NotesClient) auth(ctx context.Context) map[string]string {
	return bearerHeader(n.tokens.AccessToken(ctx))
}

// List fetches one page of notes. Pages are 1-indexed.
func (n *NotesClient) List(ctx context.Context, page int) (models.Page[models.Note], error) {
	endpoint := "/notes/?page=" + strconv.Itoa(page)
	return do[models.Page[models.Note]](ctx, n.c, http.MethodGet, endpoint, nil, n.auth(ctx))
}

// Get fetches a single note by id.
func (n *NotesClient) Get(ctx context.Context, id int) (models.Note, error) {
	endpoint := fmt.Sprintf("/notes/%d/", id)
	return do[models.Note](ctx, n.c, http.MethodGet, endpoint, nil, n.auth(ctx))
}

// Create posts a new note; the server assigns id and timestamps.
func (n *NotesClient) Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	return do[models.Note](ctx, n.c, http.MethodPost, "/notes/", req, n.auth(ctx))
}

// Update replaces a note wholesale.
func (n *NotesClient) Update(ctx context.Context, id int, req models.UpdateNoteRequest) (models.Note, error) {
	endpoint := fmt.Sprintf("/notes/%d/", id)
	return do[models.Note](ctx, n.c, http.MethodPut, endpoint, req, n.auth(ctx))
}

// Delete removes a note. The backend answers either with a {detail} body or
// with 204 and no body at all; the empty body is turned into a synthesized
// confirmation instead of a decode attempt. Both shapes are kept on purpose.
func (n *NotesClient) Delete(ctx context.Context, id int) (models.MessageResponse, error) {
	endpoint := fmt.Sprintf("/notes/%d/", id)

	data, err := n.c.request(ctx, http.MethodDelete, endpoint, nil, n.auth(ctx))
	if err != nil {
		return models.MessageResponse{}, err
	}

	if len(data) == 0 {
		return models.MessageResponse{Detail: "Note deleted successfully"}, nil
	}

	var msg models.MessageResponse
	if err := json.Unmarshal(data, &msg); err != nil {
		return models.MessageResponse{}, &Error{Kind: KindDecodingError, Message: err.Error()}
	}
	return msg, nil
}

// BulkCreate posts several notes in one request.
func (n *NotesClient) BulkCreate(ctx context.Context, reqs []models.CreateNoteRequest) ([]models.Note, error) {
	return do[[]models.Note](ctx, n.c, http.MethodPost, "/notes/bulk", reqs, n.auth(ctx))
}

// Filter fetches a page of notes whose title matches. An empty title is not
// sent as a parameter.
func (n *NotesClient) Filter(ctx context.Context, title string, page int) (models.Page[models.Note], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if title != "" {
		q.Set("title", title)
	}
	endpoint := "/notes/filter?" + q.Encode()
	return do[models.Page[models.Note]](ctx, n.c, http.MethodGet, endpoint, nil, n.auth(ctx))
}

// Search fetches a page of full-text search results for query.
func (n *NotesClient) Search(ctx context.Context, query string, page int) (models.Page[models.Note], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if query != "" {
		q.Set("q", query)
	}
	endpoint := "/notes/search?" + q.Encode()
	return do[models.Page[models.Note]](ctx, n.c, http.MethodGet, endpoint, nil, n.auth(ctx))
}
