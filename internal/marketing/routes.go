package marketing

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Post("/generate", h.Generate)
	r.Post("/suggest", h.Suggest)
	r.Post("/rag/query", h.Query)
	r.Post("/chat", h.Chat)
}
