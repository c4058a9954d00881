package handler

import (
	"context"
	"errors"
	"net/http"

	"floodwatch/internal/logger"
	"floodwatch/internal/middleware"
	"floodwatch/internal/model"
	"floodwatch/internal/service"
	"floodwatch/internal/view"
	"floodwatch/internal/web"

	"github.com/gin-gonic/gin"
)

type Asker interface {
	Ask(ctx context.Context, query string) (string, error)
}

type AskHandler struct {
	asker Asker
}

func NewAskHandler(a Asker) *AskHandler { return &AskHandler{asker: a} }

// GET /ask
func (h *AskHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "ask.html", web.AskPage{State: view.Idle})
}

// POST /ask  form field "query"
func (h *AskHandler) Submit(c *gin.Context) {
	page := web.AskPage{Query: c.PostForm("query")}
	answer, err := h.dispatch(c, page.Query)
	if err != nil {
		page.State = view.Error
		page.Alert = view.NewAlert(err, view.AskWording)
	} else {
		page.State = view.Success
		page.Answer = answer
	}
	c.HTML(http.StatusOK, "ask.html", page)
}

// POST /api/ask  body: {"query":"..."}
func (h *AskHandler) API(c *gin.Context) {
	var req model.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	answer, err := h.dispatch(c, req.Query)
	if err != nil {
		respondDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.AskResponse{Answer: answer})
}

func (h *AskHandler) dispatch(c *gin.Context, query string) (string, error) {
	rid := middleware.GetRequestID(c)
	answer, err := h.asker.Ask(c.Request.Context(), query)
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		logger.Debug("ask.skipped", "request_id", rid)
	case err != nil:
		logger.Warn("ask.failed", "request_id", rid, "kind", service.Kind(err), "err", err)
	default:
		logger.Info("ask.done", "request_id", rid, "query_len", len(query), "answer_len", len(answer))
	}
	return answer, err
}
