package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"termtap/internal/capture"
)

type sessionInfo struct {
	Name     string `json:"name"`
	Created  string `json:"created"`
	Retained int    `json:"retained"`
}

type tailResponse struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	Data64 string `json:"data64"`
}

func infoFor(s *capture.Session) sessionInfo {
	return sessionInfo{
		Name:     s.Name,
		Created:  s.Created.UTC().Format(time.RFC3339),
		Retained: s.Retained(),
	}
}

func sessionsRootHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list := registry.List()
		infos := make([]sessionInfo, 0, len(list))
		for _, s := range list {
			infos = append(infos, infoFor(s))
		}
		writeJSON(w, http.StatusOK, infos)
	case http.MethodPost:
		var in struct {
			Name string `json:"name"`
			Cwd  string `json:"cwd"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, errJSON(err))
			return
		}
		if strings.TrimSpace(in.Name) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
			return
		}
		s, err := capture.StartShell(in.Name, in.Cwd)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errJSON(err))
			return
		}
		if err := registry.Add(s); err != nil {
			_ = s.Close()
			writeJSON(w, http.StatusConflict, errJSON(err))
			return
		}
		writeJSON(w, http.StatusCreated, infoFor(s))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// /api/sessions/{name}/... multiplexer
func sessionItemHandler(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/sessions/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	name := parts[0]
	tail := parts[1:]

	if len(tail) == 0 {
		switch r.Method {
		case http.MethodGet:
			s := registry.Get(name)
			if s == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, infoFor(s))
		case http.MethodDelete:
			if !registry.Remove(name) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	switch tail[0] {
	case "tail":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		sessionTailHandler(w, r, name)
	case "ws":
		s := registry.Get(name)
		if s == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		sessionWSHandler(w, r, s)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func sessionTailHandler(w http.ResponseWriter, r *http.Request, name string) {
	// validate size before the lookup so a bad request reads the same for
	// unknown targets
	size := 1000
	if q := r.URL.Query().Get("size"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "size must be an integer"})
			return
		}
		size = n
	}
	if size <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "size must be greater than 0"})
		return
	}
	s := registry.Get(name)
	if s == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	data := s.Tail(size)
	writeJSON(w, http.StatusOK, tailResponse{
		Name:   s.Name,
		Size:   len(data),
		Data64: base64.StdEncoding.EncodeToString(data),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err, ok := v.(error); ok {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func errJSON(err error) map[string]string { return map[string]string{"error": err.Error()} }
