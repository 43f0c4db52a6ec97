package response

import "github.com/gin-gonic/gin"

const (
	sucOK    = "ok"
	sucNotOK = "not ok"
)

// Envelope is the wire shape of every API response.
type Envelope struct {
	Suc  string      `json:"suc"`
	Data interface{} `json:"data,omitempty"`
	Msg  string      `json:"msg,omitempty"`
}

// OK writes a 200 envelope carrying data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(200, Envelope{Suc: sucOK, Data: data})
}

// Created writes a 201 envelope carrying the created resource.
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Envelope{Suc: sucOK, Data: data})
}

// OKMsg writes a 200 envelope carrying a message instead of data.
func OKMsg(c *gin.Context, msg string) {
	c.JSON(200, Envelope{Suc: sucOK, Msg: msg})
}

// Fail writes an error envelope with the given status and message.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Suc: sucNotOK, Msg: msg})
}
