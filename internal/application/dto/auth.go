package dto

// LoginRequest identifiants d'un collaborateur.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResponse jeton et identité du collaborateur connecté.
type LoginResponse struct {
	Token      string `json:"token"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	NomComplet string `json:"nom_complet"`
}
