package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cleberrangel/trello-card-cli/internal/client"
	"github.com/cleberrangel/trello-card-cli/internal/logger"
	"github.com/cleberrangel/trello-card-cli/internal/model"
)

// Workflow conduz o fluxo interativo de criação de cartões: quadro,
// coluna, título e descrição, etiquetas, cartão e comentário opcional
type Workflow struct {
	client *client.Client
	p      *Prompter
}

// New cria o fluxo sobre o cliente e o prompter informados
func New(c *client.Client, p *Prompter) *Workflow {
	return &Workflow{client: c, p: p}
}

// Run executa iterações do fluxo até o usuário encerrar. Erros de uma
// iteração são mostrados ao usuário com a opção de tentar novamente;
// recusar encerra o loop
func (w *Workflow) Run(ctx context.Context) error {
	for {
		runCtx := logger.WithRunID(ctx, newRunID())

		again, err := w.runOnce(runCtx)
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				// Entrada encerrada, não há como perguntar de novo
				return nil
			}
			w.reportError(runCtx, err)
			retry, cerr := w.p.Confirm("\nDo you want to try again?", true)
			if cerr != nil || !retry {
				return nil
			}
			continue
		}
		if !again {
			return nil
		}
	}
}

// runOnce executa uma iteração completa do fluxo e informa se o usuário
// quer criar outro cartão
func (w *Workflow) runOnce(ctx context.Context) (bool, error) {
	w.p.Println("")

	board, err := w.selectBoard(ctx)
	if err != nil {
		return false, err
	}
	if board == nil {
		return w.p.Confirm("\nNo board selected. Do you want to try again?", true)
	}

	list, err := w.selectList(ctx, board.ID)
	if err != nil {
		return false, err
	}
	if list == nil {
		return w.p.Confirm("\nNo column selected. Do you want to try again?", true)
	}

	title, desc, err := w.cardDetails()
	if err != nil {
		return false, err
	}

	labelIDs, err := w.selectLabels(ctx, board.ID)
	if err != nil {
		return false, err
	}

	if len(labelIDs) == 0 {
		w.p.Infof("No labels selected.")
	} else {
		w.p.Successf("%d label(s) selected.", len(labelIDs))
	}

	card, err := w.client.CreateCard(ctx, list.ID, title, desc, labelIDs)
	if err != nil {
		return false, err
	}

	withComment, err := w.p.Confirm("\nDo you want to add a comment?", false)
	if err != nil {
		return false, err
	}
	if withComment {
		text, aerr := w.p.Ask("Enter your comment")
		if aerr != nil {
			return false, aerr
		}
		if _, aerr = w.client.AddComment(ctx, card.ID, text); aerr != nil {
			return false, aerr
		}
		w.p.Successf("\nComment added to the card.")
	}

	w.p.Successf("Card '%s' was successfully added.", title)

	return w.p.Confirm("\nDo you want to add another card?", false)
}

// selectBoard mostra os quadros disponíveis e lê a escolha do usuário.
// Retorna nil quando o usuário não tem quadros
func (w *Workflow) selectBoard(ctx context.Context) (*model.Board, error) {
	boards, err := w.client.GetBoards(ctx)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		w.p.Errorf("No boards were found.")
		return nil, nil
	}

	lines := make([]string, 0, len(boards))
	for i, board := range boards {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, board.Name))
	}
	w.p.Panel("Select an available board", lines)

	idx, err := w.p.AskIndex("\nSelect a board", len(boards))
	if err != nil {
		return nil, err
	}
	w.p.Successf("Selected Board: %s\n", boards[idx].Name)
	return &boards[idx], nil
}

// selectList mostra as colunas do quadro e lê a escolha do usuário.
// Retorna nil quando o quadro não tem colunas
func (w *Workflow) selectList(ctx context.Context, boardID string) (*model.List, error) {
	lists, err := w.client.GetLists(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		w.p.Errorf("No columns found in this board.")
		return nil, nil
	}

	lines := make([]string, 0, len(lists))
	for i, list := range lists {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, list.Name))
	}
	w.p.Panel("Select an available column", lines)

	idx, err := w.p.AskIndex("\nSelect a column", len(lists))
	if err != nil {
		return nil, err
	}
	w.p.Successf("Selected Column: %s\n", lists[idx].Name)
	return &lists[idx], nil
}

// cardDetails lê título e descrição do cartão. O título é pedido de novo
// até atingir o tamanho mínimo
func (w *Workflow) cardDetails() (string, string, error) {
	w.p.Headerf("Add Card Details")

	var title string
	for {
		value, err := w.p.Ask("Enter card title")
		if err != nil {
			return "", "", err
		}
		if model.ValidTitle(value) {
			title = value
			break
		}
		w.p.Errorf("Card title must be at least %d characters long.", model.MinCardTitleLength)
	}

	desc, err := w.p.AskDefault("Enter card description (optional)", "")
	if err != nil {
		return "", "", err
	}
	return title, desc, nil
}

// selectLabels conduz o sub-loop de etiquetas: selecionar existentes,
// criar novas ('0') ou finalizar ('F')
func (w *Workflow) selectLabels(ctx context.Context, boardID string) ([]string, error) {
	labels, err := w.client.GetLabels(ctx, boardID)
	if err != nil {
		return nil, err
	}

	var selected []string
	for {
		w.p.Println("")
		w.p.Panel("Select available labels", labelOptions(labels))

		choice, err := w.p.AskDefault("\nSelect a label (or 'F' to finish)", "F")
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(choice, "F") {
			break
		}

		if choice == "0" {
			label, cerr := w.createLabel(ctx, boardID)
			if cerr != nil {
				return nil, cerr
			}
			selected = append(selected, label.ID)
			labels = append(labels, *label)
			continue
		}

		idx, convErr := strconv.Atoi(strings.TrimSpace(choice))
		if convErr != nil || idx < 1 || idx > len(labels) {
			w.p.Errorf("Invalid selection: %s", choice)
			continue
		}
		selected = append(selected, labels[idx-1].ID)
		w.p.Successf("\n%d label(s) selected.\n", len(selected))
	}

	return selected, nil
}

// labelOptions monta as linhas do menu de etiquetas
func labelOptions(labels []model.Label) []string {
	lines := make([]string, 0, len(labels)+2)
	for i, label := range labels {
		name := label.Name
		if name == "" {
			name = "No Name"
		}
		colorName := label.Color
		if colorName == "" {
			colorName = "No Color"
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, name, colorName))
	}
	lines = append(lines, "0. Create a new label")
	lines = append(lines, "F. Finish selecting labels")
	return lines
}

// createLabel pede nome e cor de uma nova etiqueta e cria no quadro.
// O nome é pedido de novo até ser não vazio
func (w *Workflow) createLabel(ctx context.Context, boardID string) (*model.Label, error) {
	var name string
	for {
		value, err := w.p.Ask("Enter new label name")
		if err != nil {
			return nil, err
		}
		if model.ValidLabelName(value) {
			name = value
			break
		}
		w.p.Errorf("Label name cannot be empty.")
	}

	labelColor, err := w.p.AskChoice("Enter label color", model.ValidColors, "blue")
	if err != nil {
		return nil, err
	}
	if labelColor == model.NoColor {
		labelColor = ""
	}

	label, err := w.client.CreateLabel(ctx, boardID, name, labelColor)
	if err != nil {
		return nil, err
	}

	w.p.Successf("\nNew label '%s' created.\n", name)
	return label, nil
}

// reportError mostra o erro ao usuário na forma da taxonomia do fluxo:
// falhas HTTP ganham a dica de credenciais, o resto é genérico
func (w *Workflow) reportError(ctx context.Context, err error) {
	logger.Get(ctx).Error().Err(err).Msg("Falha na iteração do fluxo")

	if model.IsHTTPError(err) {
		w.p.Errorf("HTTP error occurred. Please check your API key and token.")
		w.p.Errorf("Error details: %v", err)
		return
	}
	w.p.Errorf("An error occurred: %v", err)
}

// newRunID gera o identificador curto de uma iteração (8 chars)
func newRunID() string {
	return uuid.New().String()[:8]
}
