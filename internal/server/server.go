// Package server exposes the hole import over HTTP. A KML upload is
// reconciled synchronously and the report is returned in the response body.
package server

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hole-distance/internal/calculator"
	"hole-distance/internal/excel"
	"hole-distance/internal/models"
	"hole-distance/internal/pipeline"
	"hole-distance/internal/report"
)

// ResultFileHeader carries the generated workbook name when one was requested.
const ResultFileHeader = "X-Result-File"

// Options configures the HTTP surface.
type Options struct {
	Universe  calculator.Universe
	UploadDir string
	OutputDir string
	Logger    zerolog.Logger
}

type Server struct {
	opts   Options
	engine *gin.Engine
}

// New builds the router. Upload and output directories are created on demand.
func New(opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{opts: opts, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.requestLogger())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	s.engine.POST("/run", s.handleRun)
	s.engine.GET("/download-result/:filename", s.handleDownload)

	return s
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.opts.Logger.Info().Str("addr", addr).Msg("Server listening")
	return s.engine.Run(addr)
}

func (s *Server) handleRun(c *gin.Context) {
	file, err := c.FormFile("input_file")
	if err != nil {
		fail(c, http.StatusBadRequest, "input_file is required")
		return
	}

	format := strings.ToLower(strings.TrimSpace(c.DefaultPostForm("format", c.DefaultQuery("format", report.FormatSQL))))

	if err := os.MkdirAll(s.opts.UploadDir, 0755); err != nil {
		fail(c, http.StatusInternalServerError, "upload directory unavailable")
		return
	}
	inputPath := filepath.Join(s.opts.UploadDir, fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, inputPath); err != nil {
		fail(c, http.StatusInternalServerError, "could not store upload")
		return
	}
	defer os.Remove(inputPath)

	log := s.opts.Logger.With().Str("upload", file.Filename).Logger()
	rep, err := pipeline.RunFile(inputPath, s.opts.Universe, log)
	if err != nil {
		log.Warn().Err(err).Msg("Upload rejected")
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var body bytes.Buffer
	if err := report.Write(&body, format, rep); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if c.Query("xlsx") == "1" || c.PostForm("xlsx") == "1" {
		name, err := s.writeWorkbook(rep)
		if err != nil {
			log.Error().Err(err).Msg("Workbook not written")
			fail(c, http.StatusInternalServerError, "could not write workbook")
			return
		}
		c.Header(ResultFileHeader, name)
	}

	contentType := "text/plain; charset=utf-8"
	if format == report.FormatYAML {
		contentType = "application/yaml"
	}
	c.Data(http.StatusOK, contentType, body.Bytes())
}

func (s *Server) writeWorkbook(rep models.Report) (string, error) {
	if err := os.MkdirAll(s.opts.OutputDir, 0755); err != nil {
		return "", err
	}
	name := uuid.New().String() + "_holes.xlsx"
	if err := excel.WriteReport(filepath.Join(s.opts.OutputDir, name), rep); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Server) handleDownload(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	target := filepath.Join(s.opts.OutputDir, filename)
	if _, err := os.Stat(target); err != nil {
		fail(c, http.StatusNotFound, "result not found")
		return
	}
	c.FileAttachment(target, filename)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.opts.Logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("Request handled")
	}
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "error": msg})
}
