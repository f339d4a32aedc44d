package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Route is the only path the service answers on.
const Route = "/log"

const successMessage = "Body logged successfully"

// LogHandler writes every received body to the application log and to stdout,
// then echoes it back.
type LogHandler struct {
	log    *logrus.Logger
	stdout io.Writer
}

// NewLogHandler creates a LogHandler writing to the given sinks.
func NewLogHandler(log *logrus.Logger, stdout io.Writer) *LogHandler {
	return &LogHandler{
		log:    log,
		stdout: stdout,
	}
}

// Handle serves POST /log.
func (h *LogHandler) Handle(c *gin.Context) {
	body, err := decodeObject(c.Request.Body)
	if err != nil {
		logAndReturnError(c, h.log, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.log.Infof("Received POST request to %s endpoint", Route)

	pretty, err := prettyJSON(body)
	if err != nil {
		logAndReturnError(c, h.log, "Internal Server Error", http.StatusInternalServerError, err.Error())
		return
	}
	h.log.Infof("Request body: %s", pretty)

	// One write per block so concurrent requests never split each other's output.
	if _, err := io.WriteString(h.stdout, formatBlock(pretty)); err != nil {
		logAndReturnError(c, h.log, "Internal Server Error", http.StatusInternalServerError,
			fmt.Sprintf("Error writing body to stdout: %s", err))
		return
	}

	c.JSON(http.StatusOK, LogResponse{
		Status:       "success",
		Message:      successMessage,
		ReceivedData: body,
	})
}

// NewRouter builds the engine with the log route, panic recovery and access logging.
func NewRouter(log *logrus.Logger, stdout io.Writer) *gin.Engine {
	r := gin.New()
	r.Use(logRequest(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logAndReturnError(c, log, "Internal Server Error", http.StatusInternalServerError,
			fmt.Sprintf("Recovered from panic: %v", recovered))
	}))

	h := NewLogHandler(log, stdout)
	r.POST(Route, h.Handle)
	return r
}
