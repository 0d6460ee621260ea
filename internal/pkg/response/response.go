package response

import "github.com/gin-gonic/gin"

// Every handler answers with the same envelope: {"success": true, "data": ...}
// or {"success": false, "error": {"code", "message", "details"?}}. Codes are
// stable SCREAMING_SNAKE identifiers the frontend switches on; messages are
// for humans and may change.

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, successEnvelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, errorEnvelope{
		Success: false,
		Error:   errorBody{Code: code, Message: message},
	})
}

// ErrorWithDetails carries a payload the client can render per field,
// e.g. the missing-field list from submission validation.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, errorEnvelope{
		Success: false,
		Error:   errorBody{Code: code, Message: message, Details: details},
	})
}
