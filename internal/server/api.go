package server

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"

	"pdfdoctor/internal/config"
	"pdfdoctor/internal/deps"
	"pdfdoctor/internal/guide"
	"pdfdoctor/internal/report"
	appver "pdfdoctor/internal/version"
)

func mountAPI(r *gin.Engine, cfg config.Config) {
	api := r.Group("/api")
	api.GET("/health", healthHandler(cfg))
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.String(), "commit": appver.Commit()})
	})
	api.GET("/deps", depsHandler(cfg))
	api.GET("/deps/:tool", toolHandler(cfg))
	api.GET("/guide", guideHandler(cfg))
}

// healthHandler answers 200 when every required tool is found, 503 otherwise.
func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tools := requiredOnly(cfg.ToolList())
		sum := report.NewSummary(tools, deps.CheckAll(c.Request.Context(), tools, cfg.Options()))
		code := http.StatusOK
		status := "ok"
		if !sum.OK(false) {
			code = http.StatusServiceUnavailable
			status = "missing"
		}
		c.JSON(code, gin.H{"status": status, "summary": sum})
	}
}

func depsHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tools := cfg.ToolList()
		sum := report.NewSummary(tools, deps.CheckAll(c.Request.Context(), tools, cfg.Options()))
		c.JSON(http.StatusOK, sum)
	}
}

func toolHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("tool")
		tools := cfg.ToolList()
		t, ok := deps.Lookup(name, tools)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error":       "unknown tool: " + name,
				"suggestions": deps.Suggest(name, tools, 3),
			})
			return
		}
		res := deps.CheckTool(c.Request.Context(), t, cfg.Options())
		e := report.FromResult(res)
		e.Required = t.Required
		c.JSON(http.StatusOK, e)
	}
}

func guideHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		goos := c.DefaultQuery("os", cfg.OS)
		if goos == "" {
			goos = runtime.GOOS
		}
		if goos == "all" {
			c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(guide.Markdown()))
			return
		}
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(guide.Section(goos)))
	}
}

func requiredOnly(in []deps.ToolInfo) []deps.ToolInfo {
	out := make([]deps.ToolInfo, 0, len(in))
	for _, t := range in {
		if t.Required {
			out = append(out, t)
		}
	}
	return out
}
