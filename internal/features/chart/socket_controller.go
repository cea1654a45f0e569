package chart

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type socketReply struct {
	Title  string `json:"title,omitempty"`
	Markup string `json:"markup,omitempty"`
	Error  string `json:"error,omitempty"`
}

type ChartSocketController struct {
	ChartService ChartService
	Logger       *zap.Logger
}

func NewChartSocketController(chartService ChartService, log *zap.Logger) *ChartSocketController {
	return &ChartSocketController{ChartService: chartService, Logger: log}
}

// HandleWebSocket godoc
// @Summary Chart re-render channel
// @Description Each text message is a chart request; each reply carries the rendered markup or an error
// @Tags charts
// @Router /ws/charts [get]
func (h *ChartSocketController) HandleWebSocket(c *websocket.Conn) {
	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			h.Logger.Debug("chart socket closed", zap.Error(err))
			return
		}

		reply := h.handle(msg)
		if err := c.WriteJSON(reply); err != nil {
			h.Logger.Warn("chart socket write failed", zap.Error(err))
			return
		}
	}
}

func (h *ChartSocketController) handle(msg []byte) socketReply {
	var req ChartRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return socketReply{Error: "invalid chart request"}
	}

	rendered, err := h.ChartService.Render(context.Background(), req)
	if err != nil {
		return socketReply{Error: err.Error()}
	}
	return socketReply{Title: rendered.Model.Title, Markup: rendered.Markup}
}
