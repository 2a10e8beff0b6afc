package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/molog/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/molog/internal/config"
	"github.com/MrJamesThe3rd/molog/internal/database"
	"github.com/MrJamesThe3rd/molog/internal/export"
	"github.com/MrJamesThe3rd/molog/internal/importer"
	"github.com/MrJamesThe3rd/molog/internal/ledger"
	"github.com/MrJamesThe3rd/molog/internal/popover"
	"github.com/MrJamesThe3rd/molog/internal/theme"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
	"github.com/MrJamesThe3rd/molog/internal/transaction/memory"
	txStore "github.com/MrJamesThe3rd/molog/internal/transaction/store"
)

type model struct {
	txService     *transaction.Service
	importService *importer.Service
	exportService *export.Service
	weekStart     time.Weekday

	currentView View
	size        tea.WindowSizeMsg

	ledgerView view.LedgerModel
	importView view.ImportModel
	listView   view.ListModel
	exportView view.ExportModel
}

type View int

const (
	ViewMenu   View = 0
	ViewLedger View = 1
	ViewImport View = 2
	ViewList   View = 3
	ViewExport View = 4
)

func initialModel() (model, func()) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		slog.Error("failed to open store", "store", cfg.App.Store, "error", err)
		os.Exit(1)
	}

	weekStart, _ := cfg.WeekStart()
	viewMode, _ := cfg.ViewMode()

	txSvc := transaction.NewService(repo)
	impSvc := importer.NewService()
	expSvc := export.NewService(txSvc)

	page := ledger.New(txSvc, ledger.Options{
		ViewMode:      viewMode,
		AllowDragCopy: cfg.Ledger.AllowDragCopy,
		WeekStart:     weekStart,
		Capacity:      cfg.Ledger.Capacity,
		Popover:       popover.CellOptions(),
	})

	prefs := theme.New()
	prefs.Subscribe(func(mode theme.Mode) {
		// huh and bubbles pick their adaptive colours from this
		lipgloss.SetHasDarkBackground(mode == theme.Dark)
	})

	return model{
		txService:     txSvc,
		importService: impSvc,
		exportService: expSvc,
		weekStart:     weekStart,
		currentView:   ViewMenu,
		ledgerView:    view.NewLedgerModel(page, prefs),
		importView:    view.NewImportModel(txSvc, impSvc),
		listView:      view.NewListModel(txSvc, weekStart),
		exportView:    view.NewExportModel(expSvc, weekStart),
	}, closeRepo
}

// openRepository picks the store named by STORE. The memory store starts with
// the demo ledger.
func openRepository(cfg *config.Config) (transaction.Repository, func(), error) {
	if cfg.App.Store == config.StoreMemory {
		return memory.NewSeeded(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	db, err := database.Open(ctx, cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	return txStore.New(db), func() { db.Close() }, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

// enter switches to v and replays the terminal size it missed.
func (m model) enter(v View, init tea.Cmd) (tea.Model, tea.Cmd) {
	m.currentView = v

	next, cmd := m.forward(m.size)

	return next, tea.Batch(init, cmd)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				return m.enter(ViewLedger, m.ledgerView.Init())
			case "2":
				m.importView = view.NewImportModel(m.txService, m.importService)
				return m.enter(ViewImport, m.importView.Init())
			case "3":
				m.listView = view.NewListModel(m.txService, m.weekStart)
				return m.enter(ViewList, m.listView.Init())
			case "4":
				m.exportView = view.NewExportModel(m.exportService, m.weekStart)
				return m.enter(ViewExport, m.exportView.Init())
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	return m.forward(msg)
}

func (m model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Molog 가계부\n\n" +
				"1. 달력\n" +
				"2. 가져오기 (CSV)\n" +
				"3. 전체 내역\n" +
				"4. 내보내기 (CSV)\n\n" +
				"q. 종료",
		)
	case ViewLedger:
		return m.ledgerView.View()
	case ViewImport:
		return m.importView.View()
	case ViewList:
		return m.listView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	m, closeRepo := initialModel()
	defer closeRepo()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		closeRepo()
		os.Exit(1)
	}
}
