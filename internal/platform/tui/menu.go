package tui

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-froggr/internal/core"
	"github.com/vovakirdan/tui-froggr/internal/games/froggr"
	"github.com/vovakirdan/tui-froggr/internal/registry"
	"github.com/vovakirdan/tui-froggr/internal/storage"
)

// MenuItemKind tells what selecting an entry does.
type MenuItemKind int

const (
	MenuItemGame MenuItemKind = iota
	MenuItemInstructions
	MenuItemCredits
	MenuItemScores
	MenuItemQuit
)

// MenuItem is one line of the title menu.
type MenuItem struct {
	Kind   MenuItemKind
	GameID string
	Title  string
}

type menuChoice int

const (
	choiceNone menuChoice = iota
	choiceGame
	choiceScores
	choiceQuit
)

// menuPage is what the menu shows in place of the entry list.
type menuPage int

const (
	pageEntries menuPage = iota
	pageInstructions
	pageCredits
)

// MenuModel is the title screen: one entry per variant, then instructions,
// credits, high scores and quit. Instructions and credits open in place;
// any other choice ends the program so the caller can start the next screen.
type MenuModel struct {
	items     []MenuItem
	best      map[string]int // best final score per variant
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	page      menuPage
	choice    menuChoice
}

var menuHelpKeys = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// NewMenuModel builds the menu from the registry. With a store, each
// variant shows its best score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		best:      make(map[string]int),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for _, g := range registry.List() {
		m.items = append(m.items, MenuItem{Kind: MenuItemGame, GameID: g.ID, Title: "Play " + g.Title})
		if store == nil {
			continue
		}
		if st, err := store.GetGameStats(g.ID); err == nil && st.GamesCount > 0 {
			m.best[g.ID] = st.HighScore
		}
	}
	m.items = append(m.items,
		MenuItem{Kind: MenuItemInstructions, Title: "Instructions"},
		MenuItem{Kind: MenuItemCredits, Title: "Credits"},
		MenuItem{Kind: MenuItemScores, Title: "High Scores"},
		MenuItem{Kind: MenuItemQuit, Title: "Quit"},
	)
	return m
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	if action == MenuActionQuit {
		return m.finish(choiceQuit)
	}
	if m.page != pageEntries {
		if action == MenuActionBack || action == MenuActionSelect {
			m.page = pageEntries
		}
		return m, nil
	}

	switch action {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionScoreboard:
		return m.finish(choiceScores)
	case MenuActionSelect:
		switch m.items[m.cursor].Kind {
		case MenuItemInstructions:
			m.page = pageInstructions
		case MenuItemCredits:
			m.page = pageCredits
		case MenuItemScores:
			return m.finish(choiceScores)
		case MenuItemQuit:
			return m.finish(choiceQuit)
		default:
			return m.finish(choiceGame)
		}
	}
	return m, nil
}

func (m MenuModel) finish(c menuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	return m, tea.Quit
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

func (m MenuModel) View() string {
	switch {
	case m.choice == choiceQuit:
		return ""
	case m.page == pageInstructions:
		return m.instructionsView()
	case m.page == pageCredits:
		return m.creditsView()
	}

	entries := make([]string, len(m.items))
	for i, it := range m.items {
		var hint string
		if best, ok := m.best[it.GameID]; ok {
			hint = menuHintStyle.Render(fmt.Sprintf("  best %d", best))
		}
		if i == m.cursor {
			entries[i] = menuCurStyle.Render("> "+it.Title) + hint
		} else {
			entries[i] = "  " + it.Title + hint
		}
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		"",
		menuTitleStyle.Render("  F R O G G R  "),
		"",
		"Get all four frogs home",
		"",
		lipgloss.JoinVertical(lipgloss.Left, entries...),
		"",
		menuHintStyle.Render(help.New().ShortHelpView(menuHelpKeys)),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block) + "\n"
}

// instructionLines explains the rules, including every way to lose a life.
func instructionLines() []string {
	lines := []string{
		"Hop across the road and the river to the homes at the top.",
		"Fill all four homes to win. Points for every new row reached,",
		"and a bonus for each home. Lives left multiply the final score.",
		"",
	}
	for _, c := range []froggr.DeathCause{froggr.CauseVehicle, froggr.CauseDrowned, froggr.CauseDrift, froggr.CauseGoalSide} {
		lines = append(lines, "  "+c.Message())
	}
	return lines
}

func (m MenuModel) instructionsView() string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		"",
		menuTitleStyle.Render("HOW TO PLAY"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, instructionLines()...),
		"",
		help.New().FullHelpView(m.keyMapper.Keys().FullHelp()),
		"",
		menuHintStyle.Render("Enter/Esc: back"),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block) + "\n"
}

// buildVersion is the module version stamped by go install, or "dev".
func buildVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}

func creditLines() []string {
	return []string{
		"Froggr " + buildVersion(),
		"",
		"After Frogger, Konami 1981",
		"Terminal edition by the tui-arcade authors",
		"",
		"Built with Bubble Tea, Lip Gloss and Wish",
		"Sound by beep, scores in SQLite",
	}
}

func (m MenuModel) creditsView() string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		"",
		menuTitleStyle.Render("CREDITS"),
		"",
		lipgloss.JoinVertical(lipgloss.Center, creditLines()...),
		"",
		menuHintStyle.Render("Enter/Esc: back"),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block) + "\n"
}

// Selected returns the chosen game entry, or nil.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != choiceGame {
		return nil
	}
	it := m.items[m.cursor]
	return &it
}

func (m MenuModel) IsQuitting() bool      { return m.choice == choiceQuit }
func (m MenuModel) WantsScoreboard() bool { return m.choice == choiceScores }

// Config is the runtime config with the latest window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left to center it in width columns. Styled
// text is measured without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the player picked.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes the choice. A menu left without one counts as quit.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	switch m.choice {
	case choiceGame:
		res.GameID = m.items[m.cursor].GameID
	case choiceScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the menu in its own program until a choice is made.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
