package model

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinCardTitleLength é o tamanho mínimo do título de um cartão
	MinCardTitleLength = 3

	// NoColor é o valor aceito na entrada para etiqueta sem cor
	NoColor = "null"
)

// ValidColors lista as cores de etiqueta aceitas pela API do Trello,
// mais o valor NoColor para etiqueta sem cor
var ValidColors = []string{
	"yellow", "purple", "blue", "red", "green",
	"orange", "black", "sky", "pink", "lime", NoColor,
}

// ValidTitle informa se o título do cartão atende o tamanho mínimo,
// ignorando espaços nas bordas
func ValidTitle(title string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(title)) >= MinCardTitleLength
}

// ValidLabelName informa se o nome da etiqueta é não vazio
func ValidLabelName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ValidColor informa se a cor pertence ao conjunto aceito
func ValidColor(color string) bool {
	for _, c := range ValidColors {
		if c == color {
			return true
		}
	}
	return false
}
