package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "status", status, "error", err)
	}
}

// RespondError 发送错误响应, payload 位于 "error" 字段
func RespondError(w http.ResponseWriter, status int, payload interface{}) {
	RespondJSON(w, status, map[string]interface{}{"error": payload})
}

// RespondMessage 发送 {"message": ...} 形式的响应
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}
