package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/costbook/backend/internal/datasource"
)

type StreamHandler struct {
	source *datasource.Source
}

func NewStreamHandler(source *datasource.Source) *StreamHandler {
	return &StreamHandler{source: source}
}

// Stream sends the owner's current snapshot followed by change events as
// server-sent events until the client disconnects.
func (h *StreamHandler) Stream(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	snapshot, err := h.source.Snapshot(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	events, cancel, err := h.source.Changes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	c.SSEvent("snapshot", snapshot)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-events:
			if !open {
				return false
			}
			c.SSEvent("change", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
