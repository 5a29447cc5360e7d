package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"rehab-app/internal/database"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// storeErrorStatus maps repository errors to an HTTP status.
func storeErrorStatus(err error) int {
	if errors.Is(err, database.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// pathID extracts the numeric path segment at index idx, counting from
// zero after trimming slashes. "/api/users/42" has its ID at index 2.
func pathID(r *http.Request, idx int) (int, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if idx >= len(parts) {
		return 0, errors.New("invalid path")
	}
	return strconv.Atoi(parts[idx])
}
