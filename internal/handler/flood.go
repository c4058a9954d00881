package handler

import (
	"context"
	"net/http"

	"floodwatch/internal/logger"
	"floodwatch/internal/middleware"
	"floodwatch/internal/model"
	"floodwatch/internal/service"
	"floodwatch/internal/view"
	"floodwatch/internal/web"

	"github.com/gin-gonic/gin"
)

type Predictor interface {
	Predict(ctx context.Context, in model.FloodInput) (*model.Prediction, error)
}

type FloodHandler struct {
	predictor Predictor
}

func NewFloodHandler(p Predictor) *FloodHandler { return &FloodHandler{predictor: p} }

// GET /flood
func (h *FloodHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "flood.html", web.NewFloodPage(model.DefaultFloodInput()))
}

// POST /flood  form fields as in FloodInput
func (h *FloodHandler) Submit(c *gin.Context) {
	in := model.DefaultFloodInput()
	if err := c.ShouldBind(&in); err != nil {
		page := web.NewFloodPage(in)
		page.State = view.Error
		page.Alert = &view.Alert{Kind: "invalid", Message: "Invalid input: " + err.Error()}
		c.HTML(http.StatusBadRequest, "flood.html", page)
		return
	}

	page := web.NewFloodPage(in)
	_, result, err := h.dispatch(c, in)
	if err != nil {
		page.State = view.Error
		page.Alert = view.NewAlert(err, view.PredictWording)
	} else {
		page.State = view.Success
		page.Result = result
	}
	c.HTML(http.StatusOK, "flood.html", page)
}

// POST /api/predict  JSON body; absent keys keep the form defaults
func (h *FloodHandler) API(c *gin.Context) {
	in := model.DefaultFloodInput()
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	p, result, err := h.dispatch(c, in)
	if err != nil {
		respondDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"input":      in,
		"prediction": p,
		"metrics":    result.Metrics,
		"severity":   result.Severity,
	})
}

func (h *FloodHandler) dispatch(c *gin.Context, in model.FloodInput) (*model.Prediction, *view.Assessment, error) {
	rid := middleware.GetRequestID(c)
	logger.Info("predict.submit", "request_id", rid, "month", in.Month)

	p, err := h.predictor.Predict(c.Request.Context(), in)
	if err != nil {
		logger.Warn("predict.failed", "request_id", rid, "kind", service.Kind(err), "err", err)
		return nil, nil, err
	}
	logger.Info("predict.done", "request_id", rid,
		"probability", p.FloodProbability, "risk", p.RiskScore, "flood", p.FinalFlood)
	return p, view.NewAssessment(in, p), nil
}
