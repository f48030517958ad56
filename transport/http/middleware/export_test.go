package middleware

var ClientIP = clientIP
