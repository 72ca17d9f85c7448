package handlers

import "net/http"

func Health(w http.ResponseWriter, r *http.Request) {
	success(w, map[string]string{"message": "Healthy"})
}
