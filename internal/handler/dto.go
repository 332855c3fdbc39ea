package handler

type ChatRequest struct {
	Message string `json:"message"`
}

type ClearCacheResponse struct {
	Cleared int    `json:"cleared"`
	Message string `json:"message"`
}
