package devserver

import (
	"html"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
	"github.com/microcosm-cc/bluemonday"
)

type Handler struct {
	store  *Store
	policy *bluemonday.Policy
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store, policy: bluemonday.StrictPolicy()}
}

// sanitize strips markup; titles and posts are stored as plain text.
func (h *Handler) sanitize(s string) string {
	return html.UnescapeString(h.policy.Sanitize(s))
}

func parseThreadId(r *http.Request) (domain.ThreadId, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "thread"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.store.Users())
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.store.Threads())
}

func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	id, ok := parseThreadId(r)
	if !ok {
		http.Error(w, "Invalid thread ID", http.StatusBadRequest)
		return
	}
	posts, err := h.store.Posts(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseThreadId(r)
	if !ok {
		http.Error(w, "Invalid thread ID", http.StatusBadRequest)
		return
	}
	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post := domain.Post{User: body.User, Text: h.sanitize(body.Text)}
	if err := h.store.CreatePost(id, post); err != nil {
		recordEvent(eventWriteRejected)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	recordEvent(eventPostCreated)
	logger.Log.Info("post created", "component", "devserver", "thread_id", id, "user", post.User)
	utils.WriteJSON(w, http.StatusCreated, post)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	first := domain.Post{User: body.User, Text: h.sanitize(body.Text)}
	thread, err := h.store.CreateThread(domain.Thread{
		Title: h.sanitize(body.Title),
		Icon:  body.Icon,
		User:  body.User,
	}, first)
	if err != nil {
		recordEvent(eventWriteRejected)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	recordEvent(eventThreadCreated)
	logger.Log.Info("thread created", "component", "devserver", "thread_id", thread.Id, "user", thread.User)
	utils.WriteJSON(w, http.StatusCreated, api.CreateThreadResponse{Thread: thread, Post: first})
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	id, ok := parseThreadId(r)
	if !ok {
		http.Error(w, "Invalid thread ID", http.StatusBadRequest)
		return
	}
	var body api.DeleteThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.store.DeleteThread(id, body.User); err != nil {
		recordEvent(eventWriteRejected)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	recordEvent(eventThreadDeleted)
	logger.Log.Info("thread deleted", "component", "devserver", "thread_id", id, "user", body.User)
	utils.WriteJSON(w, http.StatusOK, api.DeleteThreadResponse{Deleted: id})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
