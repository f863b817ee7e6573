package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
// Lowercase letters are always included.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Numbers          *bool `json:"numbers"`
	Symbols          *bool `json:"symbols"`
	RequireEachClass bool  `json:"require_each_class"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strength int    `json:"strength"`
	Tier     string `json:"tier"`
}

// ScoreRequest asks for the strength of a single password.
type ScoreRequest struct {
	Password string `json:"password"`
}

// ScoreResponse carries a strength percentage and its display tier.
type ScoreResponse struct {
	Strength int    `json:"strength"`
	Tier     string `json:"tier"`
}
