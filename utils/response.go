package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All endpoints answer with a flat JSON object carrying a success flag and
// a human-readable message, plus any handler-specific fields merged in at
// the top level. The storefront frontend keys off the success flag.

func body(success bool, message string, fields gin.H) gin.H {
	resp := gin.H{
		"success": success,
		"message": message,
	}
	for k, v := range fields {
		resp[k] = v
	}
	return resp
}

// Success sends a 200 response with success=true
func Success(c *gin.Context, message string, fields gin.H) {
	c.JSON(http.StatusOK, body(true, message, fields))
}

// Created sends a 201 response with success=true
func Created(c *gin.Context, message string, fields gin.H) {
	c.JSON(http.StatusCreated, body(true, message, fields))
}

// Error sends an error response with success=false
func Error(c *gin.Context, statusCode int, message string, fields gin.H) {
	c.JSON(statusCode, body(false, message, fields))
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, fields gin.H) {
	Error(c, http.StatusBadRequest, message, fields)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden response
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Conflict sends a 409 Conflict response
func Conflict(c *gin.Context, message string, fields gin.H) {
	Error(c, http.StatusConflict, message, fields)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, message string, fields gin.H) {
	Error(c, http.StatusInternalServerError, message, fields)
}
