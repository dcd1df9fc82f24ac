package workflow

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrInputClosed indica que a entrada interativa terminou e não há mais
// respostas para ler
var ErrInputClosed = errors.New("entrada interativa encerrada")

// Prompter lê respostas do usuário e imprime mensagens formatadas no
// terminal. A entrada e a saída são injetáveis para permitir testes com
// roteiros de entrada
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	bold  *color.Color
	green *color.Color
	red   *color.Color
	blue  *color.Color
}

// NewPrompter cria um Prompter sobre o par entrada/saída informado
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		bold:  color.New(color.Bold),
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
		blue:  color.New(color.FgBlue),
	}
}

// Ask imprime a pergunta e lê uma linha da entrada
func (p *Prompter) Ask(question string) (string, error) {
	p.bold.Fprintf(p.out, "%s: ", question)
	return p.readLine()
}

// AskDefault pergunta com um valor padrão usado quando a resposta é vazia
func (p *Prompter) AskDefault(question, def string) (string, error) {
	p.bold.Fprintf(p.out, "%s [%s]: ", question, def)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) == "" {
		return def, nil
	}
	return line, nil
}

// AskChoice pergunta até o usuário responder uma das opções aceitas.
// Resposta vazia retorna o padrão
func (p *Prompter) AskChoice(question string, choices []string, def string) (string, error) {
	for {
		p.bold.Fprintf(p.out, "%s (%s) [%s]: ", question, strings.Join(choices, "/"), def)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def, nil
		}
		for _, choice := range choices {
			if strings.EqualFold(line, choice) {
				return choice, nil
			}
		}
		p.Errorf("Please select one of the available options.")
	}
}

// AskIndex pergunta até o usuário responder um número entre 1 e n,
// retornando o índice base zero correspondente
func (p *Prompter) AskIndex(question string, n int) (int, error) {
	for {
		p.bold.Fprintf(p.out, "%s [1-%d]: ", question, n)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		idx, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && idx >= 1 && idx <= n {
			return idx - 1, nil
		}
		p.Errorf("Please select one of the available options.")
	}
}

// Confirm pergunta sim/não. Resposta vazia retorna o padrão
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		p.bold.Fprintf(p.out, "%s [%s]: ", question, hint)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.Errorf("Please answer 'y' or 'n'.")
	}
}

// Panel imprime um bloco com título e linhas de opções
func (p *Prompter) Panel(title string, lines []string) {
	width := len(title)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	border := strings.Repeat("-", width+2)
	fmt.Fprintf(p.out, "+%s+\n", border)
	p.bold.Fprintf(p.out, "| %-*s |\n", width, title)
	fmt.Fprintf(p.out, "+%s+\n", border)
	for _, line := range lines {
		fmt.Fprintf(p.out, "| %-*s |\n", width, line)
	}
	fmt.Fprintf(p.out, "+%s+\n", border)
}

// Println imprime uma linha sem formatação
func (p *Prompter) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// Successf imprime uma mensagem de sucesso em verde
func (p *Prompter) Successf(format string, a ...interface{}) {
	p.green.Fprintf(p.out, format+"\n", a...)
}

// Errorf imprime uma mensagem de erro em vermelho
func (p *Prompter) Errorf(format string, a ...interface{}) {
	p.red.Fprintf(p.out, format+"\n", a...)
}

// Infof imprime uma mensagem informativa em azul
func (p *Prompter) Infof(format string, a ...interface{}) {
	p.blue.Fprintf(p.out, format+"\n", a...)
}

// Headerf imprime um cabeçalho em negrito
func (p *Prompter) Headerf(format string, a ...interface{}) {
	p.bold.Fprintf(p.out, format+"\n", a...)
}

// readLine lê uma linha da entrada. A última linha sem quebra final ainda
// é aceita; depois disso ErrInputClosed é retornado
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
