package dto

// ErrorResponse enveloppe standard des erreurs HTTP. Le message est en
// français et destiné à l'affichage direct.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse enveloppe des confirmations simples.
type MessageResponse struct {
	Message string `json:"message"`
}
