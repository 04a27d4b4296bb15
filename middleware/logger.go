package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		user := "-"
		if id, ok := param.Keys[userIDKey]; ok {
			user = fmt.Sprintf("user=%v", id)
		}

		logFormat := fmt.Sprintf("[%s] %s %s %d %s %s %s\n",
			param.TimeStamp.Format(time.RFC3339),
			param.Method,
			param.Path,
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			user,
		)
		log.Print(logFormat)

		return logFormat
	})
}
