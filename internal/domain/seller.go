package domain

// Seller é uma entrada do diretório de usuários usada para resolver nomes
// livres de vendedor/profissional para identificadores internos.
type Seller struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	TeamID int    `json:"team_id"`
}

// SellerRef é o resultado da resolução de um nome: o dono e o time que
// serão gravados no registro persistido.
type SellerRef struct {
	UserID int
	TeamID int
}
