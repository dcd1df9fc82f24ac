package model

// Board representa um quadro do Trello
type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List representa uma lista (coluna) de um quadro
type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label representa uma etiqueta de um quadro
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Card representa um cartão do Trello
type Card struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Desc     string   `json:"desc"`
	ListID   string   `json:"idList"`
	LabelIDs []string `json:"idLabels"`
	URL      string   `json:"url"`
}

// Comment representa um comentário adicionado a um cartão
type Comment struct {
	ID   string      `json:"id"`
	Data CommentData `json:"data"`
}

// CommentData carrega o texto do comentário na resposta da API
type CommentData struct {
	Text string `json:"text"`
}

// Member representa o usuário autenticado no Trello
type Member struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}
