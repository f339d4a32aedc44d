package handler

// LogResponse is the acknowledgement returned for every logged body.
type LogResponse struct {
	Status       string         `json:"status"`
	Message      string         `json:"message"`
	ReceivedData map[string]any `json:"received_data"`
}

type errorResponse struct {
	Error string `json:"error"`
}
