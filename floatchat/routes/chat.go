package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"floatchat/floatchat/controllers"
	types "floatchat/floatchat/utils/types"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
)

func ChatRoutes(ctrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()

	// POST /chat/ : send message
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp, err := ctrl.Chat(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(resp)
	})

	// GET /chat/quick : ordered quick-query shortcuts
	r.Get("/quick", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ctrl.QuickQueries(r.Context()))
	})

	// GET /chat/sessions : list all live sessions (threads)
	r.Get("/sessions", func(w http.ResponseWriter, r *http.Request) {
		sessions, err := ctrl.ListSessions(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(sessions)
	})

	// GET /chat/session/{session_id}/messages : full ordered log
	r.Get("/session/{session_id}/messages", func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session_id")
		msgs, err := ctrl.GetMessagesForSession(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, controllers.ErrSessionNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
			} else {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		json.NewEncoder(w).Encode(msgs)
	})

	// DELETE /chat/session/{session_id} : end one session (thread)
	r.Delete("/session/{session_id}", func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session_id")
		if err := ctrl.DeleteSession(r.Context(), sessionID); err != nil {
			if errors.Is(err, controllers.ErrSessionNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
			} else {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	// GET /chat/ws : one request in, assistant reply streamed out in chunks
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "unsupported data")
			return
		}
		var req types.ChatRequest
		if err := json.Unmarshal(data, &req); err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
			return
		}

		ch, errCh := ctrl.ChatStream(ctx, req)
		go func() {
			if err := <-errCh; err != nil {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"`+err.Error()+`"}`))
				conn.Close(websocket.StatusInternalError, "stream error")
			}
		}()

		for chunk := range ch {
			if err := conn.Write(ctx, websocket.MessageText, []byte(chunk)); err != nil {
				return
			}
		}
		conn.Close(websocket.StatusNormalClosure, "")
	})

	return r
}
