package controllers

import (
	"net/http"
	"os"

	"floatchat/floatchat/utils/logging"

	"go.uber.org/zap"
)

// fallbackCSS keeps the page usable when the themed stylesheet is absent.
const fallbackCSS = `.header { text-align: center; padding: 20px 10px; }
.header h1 { color: #e0f7fa; margin: 0; font-size: 34px; }
.tagline { color: #90e0ef; margin-top: 6px; font-size: 14px; }
.chat-message { padding: 1rem; border-radius: 0.75rem; margin-bottom: 0.9rem; max-width: 85%; }
.chat-message.user { background-color: rgba(72,202,228,0.12); margin-left: auto; }
.chat-message.assistant { background-color: rgba(0,119,182,0.12); margin-right: auto; }
.timestamp { font-size: 0.75rem; color: #90e0ef; text-align: right; margin-top: 0.5rem; }
`

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>FloatChat - Ocean Data Discovery</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body>
  <div class="header">
    <h1>🌊 FloatChat - Ocean Data Discovery</h1>
    <div class="tagline">Explore ARGO ocean data with AI-powered insights</div>
  </div>
</body>
</html>
`

type UIController struct {
	stylePath string
}

func NewUIController(stylePath string) *UIController {
	return &UIController{stylePath: stylePath}
}

func (c *UIController) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// Stylesheet serves the themed stylesheet from disk, falling back to the
// built-in minimal styles when the file is missing. The miss is a warning,
// never an error: the page stays fully functional.
func (c *UIController) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	css, err := os.ReadFile(c.stylePath)
	if err != nil {
		logging.AppLogger.Warn("style.css not found, using fallback styles",
			zap.String("path", c.stylePath), zap.Error(err))
		w.Write([]byte(fallbackCSS))
		return
	}
	w.Write(css)
}
