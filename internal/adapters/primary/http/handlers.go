package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string    `json:"error"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// HealthResponse is returned by /healthz
type HealthResponse struct {
	Status      string `json:"status"`
	HasDocument bool   `json:"has_document"`
	Clients     int    `json:"clients"`
}

const reloadScript = `<script>
(function () {
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var socket = new WebSocket(scheme + location.host + "/ws");
  socket.onmessage = function (msg) {
    var event = JSON.parse(msg.data);
    if (event.type === "reload") {
      location.reload();
    } else if (event.type === "error") {
      var detail = event.data || {};
      console.error("revealdeck: rebuild failed:", detail.error);
      var banner = document.getElementById("revealdeck-error");
      if (!banner) {
        banner = document.createElement("pre");
        banner.id = "revealdeck-error";
        banner.style.cssText = "position:fixed;top:0;left:0;right:0;z-index:10000;margin:0;" +
          "padding:8px 12px;background:#b00020;color:#fff;font:14px monospace;white-space:pre-wrap";
        document.body.appendChild(banner);
      }
      banner.textContent = "Rebuild failed (" + (detail.file || "deck") + "): " + detail.error;
    }
  };
})();
</script>
`

const placeholderPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>revealdeck</title></head>
<body><p>The deck has not been built yet.</p></body></html>
`

// handleDocument serves the current deck with the reload script injected
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc := s.currentDocument()
	status := http.StatusOK
	if doc == nil {
		doc = []byte(placeholderPage)
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(injectReloadScript(doc)); err != nil {
		s.logger.Error("failed to write document: %v", err)
	}
}

// injectReloadScript places the reload script before the last </body>,
// or at the end when there is none. doc is not modified.
func injectReloadScript(doc []byte) []byte {
	idx := bytes.LastIndex(bytes.ToLower(doc), []byte("</body>"))
	if idx < 0 {
		out := make([]byte, 0, len(doc)+len(reloadScript))
		out = append(out, doc...)
		return append(out, reloadScript...)
	}

	out := make([]byte, 0, len(doc)+len(reloadScript))
	out = append(out, doc[:idx]...)
	out = append(out, reloadScript...)
	return append(out, doc[idx:]...)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{
		Status:      "ok",
		HasDocument: s.currentDocument() != nil,
		Clients:     s.manager().Count(),
	})
}

// handleError writes a JSON error without leaking err to the client
func (s *Server) handleError(w http.ResponseWriter, err error, status int) {
	var message string
	switch status {
	case http.StatusBadRequest:
		message = "Invalid request"
	case http.StatusForbidden:
		message = "Access denied"
	case http.StatusNotFound:
		message = "Resource not found"
	case http.StatusInternalServerError:
		message = "Internal server error"
	default:
		message = "An error occurred"
	}

	s.logger.Error("HTTP error (status %d): %v", status, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Time:    time.Now(),
	}); encodeErr != nil {
		s.logger.Error("failed to encode error response: %v", encodeErr)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		s.handleError(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.logger.Error("failed to write JSON response: %v", err)
	}
}

// secureFileServer serves files under root and refuses paths escaping it.
// Dot files are never served.
func secureFileServer(root string) http.Handler {
	fileServer := http.FileServer(http.Dir(root))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if root == "" {
			http.NotFound(w, r)
			return
		}

		cleanPath := filepath.Clean("/" + r.URL.Path)
		for _, part := range strings.Split(filepath.ToSlash(cleanPath), "/") {
			if strings.HasPrefix(part, ".") {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
		}

		absRoot, err := filepath.Abs(root)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		absPath := filepath.Join(absRoot, cleanPath)
		if absPath != absRoot && !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		info, err := os.Stat(absPath)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Cache-Control", "no-cache")
		fileServer.ServeHTTP(w, r)
	})
}
