package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON escribe v como cuerpo JSON con el status indicado.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RespondError escribe un error JSON con la forma {"error": mensaje}.
func RespondError(w http.ResponseWriter, status int, mensaje string) {
	RespondJSON(w, status, map[string]string{"error": mensaje})
}
