package handlers

import (
	"net/http"
	"strconv"

	"laxmimall-server/database"

	"github.com/gin-gonic/gin"
)

// Store is the shared record store used by all handlers.
var Store *database.Store

// InitializeHandlers wires the store into the handler functions.
func InitializeHandlers(store *database.Store) {
	Store = store
}

// paramID parses a numeric path parameter. On failure it writes the 400
// response and reports false.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
