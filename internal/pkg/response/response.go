package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request logger stores the request id under.
const RequestIDKey = "X-Request-ID"

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
}

type APIResponse struct {
	Success    bool         `json:"success"`
	Data       interface{}  `json:"data"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Error      *ErrorDetail `json:"error"`
	RequestID  string       `json:"requestId"`
	Timestamp  string       `json:"timestamp"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func Success(c *gin.Context, status int, data interface{}, pag *Pagination) {
	c.JSON(status, APIResponse{
		Success:    true,
		Data:       data,
		Pagination: pag,
		RequestID:  c.GetString(RequestIDKey),
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}

// Error writes the failure envelope. The browser shows Message as a
// non-blocking notification; nothing here is fatal to the page.
func Error(c *gin.Context, status int, errCode string, message string, details interface{}) {
	c.JSON(status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &ErrorDetail{
			Code:    errCode,
			Message: message,
			Details: details,
		},
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Redirect answers with the navigation target instead of a 3xx so that
// fetch-based callers can follow it themselves.
func Redirect(c *gin.Context, status int, location string, data interface{}) {
	c.Header("Location", location)
	Success(c, status, gin.H{"redirect": location, "result": data}, nil)
}
