package handler

import (
	"errors"
	"net"
	"net/http"

	"floodwatch/internal/service"

	"github.com/gin-gonic/gin"
)

// respondDispatchError maps a dispatcher failure onto the JSON API.
func respondDispatchError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error(), "kind": service.Kind(err)}
	code := http.StatusBadGateway

	var se *service.StatusError
	var ne net.Error
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		code = http.StatusBadRequest
	case errors.As(err, &se):
		body["status"] = se.Code
		body["body"] = se.Body
	case errors.As(err, &ne) && ne.Timeout():
		code = http.StatusGatewayTimeout
	}
	c.JSON(code, body)
}
