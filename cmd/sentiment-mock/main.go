package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"
)

type labelRequest struct {
	Text string `json:"text"`
}

type labelResponse struct {
	Label string `json:"label"`
}

var positiveWords = []string{
	"great", "excellent", "masterpiece", "loved", "amazing", "wonderful", "brilliant", "perfect",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "boring", "hated", "waste", "disappointing", "worst",
}

// classify counts keyword hits; ties and no hits come out NEUTRAL.
func classify(text string) string {
	lower := strings.ToLower(text)
	score := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score--
		}
	}
	switch {
	case score > 0:
		return "POSITIVE"
	case score < 0:
		return "NEGATIVE"
	default:
		return "NEUTRAL"
	}
}

func main() {
	port := flag.String("port", "9099", "port to listen on")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/label", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		var req labelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(labelResponse{Label: classify(req.Text)}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	addr := ":" + *port
	log.Printf("mock sentiment labeler listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
