package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeBody unmarshals the request body into destination and runs its
// validate tags. The error message is safe to return to the client.
func decodeBody(r *http.Request, destination interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(destination); err != nil {
		return fmt.Errorf("invalid request body")
	}
	if err := validate.Struct(destination); err != nil {
		return fmt.Errorf("invalid request body: %v", err)
	}
	return nil
}
