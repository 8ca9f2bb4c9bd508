package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"gitlab.com/open-soft/go-crypto-dashboard/src/event"
	"gitlab.com/open-soft/go-crypto-dashboard/src/logger"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/service"
)

const StatusOnline = "● online"
const StatusOffline = "● offline"

type focusArea int

const (
	focusSymbol focusArea = iota
	focusInterval
	focusAmount
	focusFrom
	focusTo
	focusQuery
	focusCount
)

type Dependencies struct {
	Logger       logger.Interface
	PriceBoard   *service.PriceBoard
	ChartService *service.ChartService
	Converter    *service.Converter
	QueryService *service.QueryService
	BootService  *service.BootService

	Symbols         model.SupportedSymbols
	DefaultSymbol   string
	Intervals       []string
	DefaultInterval string
	Assets          []string
	DefaultFrom     string
	DefaultTo       string
}

// Dashboard is the bubbletea model. Update is the only place display state
// changes; network work runs inside commands and comes back as messages.
type Dashboard struct {
	ctx    context.Context
	logger logger.Interface

	board        *service.PriceBoard
	chartService *service.ChartService
	converter    *service.Converter
	queryService *service.QueryService
	bootService  *service.BootService
	canvas       *service.ChartCanvas

	symbol   *service.OptionSelector
	interval *service.OptionSelector
	from     *service.OptionSelector
	to       *service.OptionSelector
	amount   textinput.Model
	query    textinput.Model
	focus    focusArea

	online     bool
	rows       []model.PriceRow
	chartTitle string
	conversion string
	reply      string

	chartSeq   service.RequestSequencer
	convertSeq service.RequestSequencer
	querySeq   service.RequestSequencer

	width, height int
}

func NewDashboard(ctx context.Context, deps Dependencies) *Dashboard {
	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.SetValue("1")
	amount.CharLimit = 32
	amount.Width = 16

	query := textinput.New()
	query.Placeholder = "ask something"
	query.CharLimit = 1024
	query.Width = 48

	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &Dashboard{
		ctx:          ctx,
		logger:       log,
		board:        deps.PriceBoard,
		chartService: deps.ChartService,
		converter:    deps.Converter,
		queryService: deps.QueryService,
		bootService:  deps.BootService,
		canvas:       &service.ChartCanvas{},
		symbol:       service.NewSymbolSelector(deps.Symbols, deps.DefaultSymbol),
		interval:     service.NewOptionSelector(deps.Intervals, deps.DefaultInterval),
		from:         service.NewOptionSelector(deps.Assets, deps.DefaultFrom),
		to:           service.NewOptionSelector(deps.Assets, deps.DefaultTo),
		amount:       amount,
		query:        query,
		rows:         make([]model.PriceRow, 0),
	}
}

// Init runs the boot sequence one step after another.
func (d *Dashboard) Init() tea.Cmd {
	return tea.Sequence(d.bootCommands()...)
}

// bootCommands is the ordered boot: the chart for the default selection
// first, then the price snapshot.
func (d *Dashboard) bootCommands() []tea.Cmd {
	return []tea.Cmd{d.loadChart(), d.loadSnapshot()}
}

func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case event.Connected:
		d.online = true
	case event.Disconnected:
		d.online = false
	case event.PricesReceived:
		d.rows = d.board.Render(msg.Items)
	case snapshotLoadedMsg:
		d.rows = d.board.Render(msg.ticks)
	case chartLoadedMsg:
		if !d.chartSeq.Finish(msg.seq) {
			return d, nil
		}
		if msg.err != nil {
			d.logger.Error(msg.err, logger.NewField("panel", "chart"), logger.NewField("title", d.chartTitle))
			return d, nil
		}
		d.canvas.Redraw(msg.data)
	case conversionMsg:
		if !d.convertSeq.Finish(msg.seq) {
			return d, nil
		}
		if msg.err != nil {
			d.logger.Error(msg.err, logger.NewField("panel", "converter"))
			return d, nil
		}
		d.conversion = msg.text
	case replyMsg:
		if !d.querySeq.Finish(msg.seq) {
			return d, nil
		}
		if msg.err != nil {
			d.logger.Error(msg.err, logger.NewField("panel", "query"))
			return d, nil
		}
		d.reply = msg.text
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
	case tea.KeyMsg:
		return d, d.handleKey(msg)
	}

	return d, nil
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "tab":
		return d.setFocus((d.focus + 1) % focusCount)
	case "shift+tab":
		return d.setFocus((d.focus - 1 + focusCount) % focusCount)
	case "enter":
		return d.activate()
	case "left", "right":
		if selector := d.focusedSelector(); selector != nil {
			if msg.String() == "left" {
				selector.Prev()
			} else {
				selector.Next()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch d.focus {
	case focusAmount:
		d.amount, cmd = d.amount.Update(msg)
	case focusQuery:
		d.query, cmd = d.query.Update(msg)
	}

	return cmd
}

func (d *Dashboard) setFocus(focus focusArea) tea.Cmd {
	d.focus = focus
	d.amount.Blur()
	d.query.Blur()

	switch focus {
	case focusAmount:
		return d.amount.Focus()
	case focusQuery:
		return d.query.Focus()
	}

	return nil
}

func (d *Dashboard) focusedSelector() *service.OptionSelector {
	switch d.focus {
	case focusSymbol:
		return d.symbol
	case focusInterval:
		return d.interval
	case focusFrom:
		return d.from
	case focusTo:
		return d.to
	}

	return nil
}

func (d *Dashboard) activate() tea.Cmd {
	switch d.focus {
	case focusSymbol, focusInterval:
		return d.loadChart()
	case focusAmount, focusFrom, focusTo:
		return d.convert()
	case focusQuery:
		return d.sendQuery()
	}

	return nil
}

func (d *Dashboard) loadChart() tea.Cmd {
	symbol := d.symbol.Value()
	interval := d.interval.Value()
	d.chartTitle = d.chartService.Title(symbol, interval)

	ctx, seq := d.chartSeq.Begin(d.ctx)
	chartService := d.chartService

	return func() tea.Msg {
		data, err := chartService.Load(ctx, symbol, interval)

		return chartLoadedMsg{seq: seq, data: data, err: err}
	}
}

func (d *Dashboard) loadSnapshot() tea.Cmd {
	ctx := d.ctx
	bootService := d.bootService

	return func() tea.Msg {
		return snapshotLoadedMsg{ticks: bootService.LoadSnapshot(ctx)}
	}
}

func (d *Dashboard) convert() tea.Cmd {
	amountInput := d.amount.Value()
	from := d.from.Value()
	to := d.to.Value()

	ctx, seq := d.convertSeq.Begin(d.ctx)
	converter := d.converter

	return func() tea.Msg {
		text, err := converter.Convert(ctx, amountInput, from, to)

		return conversionMsg{seq: seq, text: text, err: err}
	}
}

// sendQuery ignores blank input entirely: no request, no placeholder.
func (d *Dashboard) sendQuery() tea.Cmd {
	text, ok := d.queryService.Prepare(d.query.Value())
	if !ok {
		return nil
	}

	d.reply = service.QueryWaitingPlaceholder

	ctx, seq := d.querySeq.Begin(d.ctx)
	queryService := d.queryService

	return func() tea.Msg {
		reply, err := queryService.Ask(ctx, text)

		return replyMsg{seq: seq, text: reply, err: err}
	}
}
