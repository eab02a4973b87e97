package pos

import (
	"strconv"
	"strings"

	"github.com/ferreplus/internal/http/response"

	"github.com/gin-gonic/gin"
)

// TerminalHeader carries the terminal identity. Every cart is keyed by it,
// so the header is mandatory on all cart and checkout routes.
const TerminalHeader = "X-Terminal-ID"

func terminalID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(TerminalHeader))
	if id == "" {
		response.BadRequest(c, "missing "+TerminalHeader+" header")
		return "", false
	}
	return id, true
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

func queryUint(c *gin.Context, name string) uint {
	value, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(value)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
