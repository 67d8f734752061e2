package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jba/hufftext"
	"github.com/jba/hufftext/internal/service"
)

type CompressHandler struct {
	svc     *service.Compressor
	maxBody int64
}

func NewCompressHandler(s *service.Compressor, maxBody int64) *CompressHandler {
	return &CompressHandler{svc: s, maxBody: maxBody}
}

func (h *CompressHandler) Encode(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	out, err := h.svc.Encode(body)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Content-Xxhash", service.Digest(body))
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *CompressHandler) Decode(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	out, err := h.svc.Decode(body)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Content-Xxhash", service.Digest(out))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", out)
}

type tableEntry struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
}

// Table returns the code table for the request body, in header order.
func (h *CompressHandler) Table(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	t, err := h.svc.Table(body)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	entries := make([]tableEntry, 0, t.Len())
	for _, r := range t.Symbols() {
		code, _ := t.Code(r)
		entries = append(entries, tableEntry{Symbol: string(r), Code: code.String()})
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CompressHandler) Stat(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	st, err := h.svc.Stat(body)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *CompressHandler) readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return body, true
}

// statusFor maps codec errors to 400 and anything else to 500.
func statusFor(err error) int {
	var ce *hufftext.CodeError
	switch {
	case errors.As(err, &ce),
		errors.Is(err, hufftext.ErrNoSymbols),
		errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
