package model

type VocabEntry struct {
	ID    int    `json:"id"`
	Event string `json:"event"`
}

type SummaryResponse struct {
	NumSequences int            `json:"num_sequences"`
	TotalTokens  uint64         `json:"total_tokens"`
	MinTokens    int            `json:"min_tokens"`
	MaxTokens    int            `json:"max_tokens"`
	AvgTokens    float64        `json:"avg_tokens"`
	PerGenre     map[string]int `json:"per_genre"`
}

type SequenceResponse struct {
	Num       int      `json:"num"`
	Genre     string   `json:"genre"`
	GenreID   int      `json:"genre_id"`
	NumTokens int      `json:"num_tokens"`
	Tokens    []Token  `json:"tokens"`
	Events    []string `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
