package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-tileblit/tileblit/backend"
	"github.com/valerio/go-tileblit/tileblit/backend/terminal/render"
	"github.com/valerio/go-tileblit/tileblit/debug"
	"github.com/valerio/go-tileblit/tileblit/input"
	"github.com/valerio/go-tileblit/tileblit/input/action"
	"github.com/valerio/go-tileblit/tileblit/input/event"
	"github.com/valerio/go-tileblit/tileblit/video"
)

const (
	rightPanelWidth = 44
	statsHeight     = 9
	minTermWidth    = 60
	minTermHeight   = 16
	logCapacity     = 200
)

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen     tcell.Screen
	running    bool
	logBuffer  *render.LogBuffer
	logLevel   slog.Level
	config     backend.BackendConfig
	eventQueue []backend.InputEvent
	signals    chan os.Signal

	// default logger in place before Init, restored by Cleanup
	previousLogger *slog.Logger

	// Snapshot state
	currentFrame *video.FrameBuffer
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{
		logLevel: slog.LevelInfo,
	}
}

// NewWithScreen creates a terminal backend drawing on the given screen.
// Init will still call screen.Init.
func NewWithScreen(screen tcell.Screen) *Backend {
	b := New()
	b.screen = screen
	return b
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config
	t.eventQueue = make([]backend.InputEvent, 0)

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.running = true

	// Logs go to the log pane while the screen owns the terminal
	t.logBuffer = render.NewLogBuffer(logCapacity)
	handler := render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)
	t.previousLogger = slog.Default()
	slog.SetDefault(slog.New(handler))

	slog.Info("Terminal backend initialized")
	if config.ShowDebug {
		slog.Debug("Debug mode enabled")
	}

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	// Set up signal handling for graceful shutdown
	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	return nil
}

// Update renders a frame and processes events
func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	select {
	case sig := <-t.signals:
		slog.Info("Received signal to stop", "signal", sig.String())
		t.running = false
		t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: action.EmulatorQuit, Type: event.Press})
	default:
	}

	// Poll for input events synchronously
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	events := t.eventQueue
	t.eventQueue = nil
	for _, evt := range events {
		slog.Debug("UI event", "action", action.GetInfo(evt.Action).Description, "type", evt.Type)
	}

	if !t.running {
		return events, nil
	}

	t.currentFrame = frame
	t.render(frame)
	t.screen.Show()

	return events, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.screen != nil {
		t.screen.Fini()
	}
	// hand logging back to the terminal so errors after shutdown are seen
	if t.previousLogger != nil {
		slog.SetDefault(t.previousLogger)
		t.previousLogger = nil
	}
	slog.Info("Cleaned up terminal backend")
	return nil
}

// HandleAction processes backend-specific actions
func (t *Backend) HandleAction(act action.Action) {
	switch act {
	case action.EmulatorSnapshot:
		debug.TakeSnapshot(t.currentFrame, t.stats().Mode)
	case action.EmulatorDebugToggle:
		t.config.ShowDebug = !t.config.ShowDebug
		if t.config.ShowDebug {
			slog.Info("Debug display enabled")
		} else {
			slog.Info("Debug display disabled")
		}
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

// LogLevel returns the minimum level shown in the log pane
func (t *Backend) LogLevel() slog.Level {
	return t.logLevel
}

func (t *Backend) stats() *debug.Stats {
	if t.config.StatsProvider == nil {
		return &debug.Stats{}
	}
	return t.config.StatsProvider.ExtractStats()
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEscape: "Escape",
	tcell.KeyF10:    "F10",
	tcell.KeyF12:    "F12",
}

// buildKeyMapping creates the key mapping from default mappings
func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)

	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}

	mapping[tcell.KeyCtrlC] = action.EmulatorQuit

	return mapping
}

// buildRuneMapping creates the rune mapping from default mappings
func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)

	for keyName, act := range input.DefaultKeyMap {
		runes := []rune(keyName)
		if len(runes) == 1 {
			mapping[runes[0]] = act
			// letters work with shift or caps lock held
			if upper := unicode.ToUpper(runes[0]); upper != runes[0] {
				mapping[upper] = act
			}
		}
	}
	mapping[' '] = input.DefaultKeyMap["Space"]

	return mapping
}

// keyMapping maps tcell keys to actions
var keyMapping = buildKeyMapping()

// runeMapping maps runes to actions
var runeMapping = buildRuneMapping()

func (t *Backend) processKeyEvent(ev *tcell.EventKey) {
	var (
		act    action.Action
		exists bool
	)
	if ev.Key() == tcell.KeyRune {
		act, exists = runeMapping[ev.Rune()]
	} else {
		act, exists = keyMapping[ev.Key()]
	}
	if !exists {
		return
	}

	if act == action.EmulatorQuit {
		t.running = false
	}
	slog.Debug("Key event", "key", ev.Name(), "action", action.GetInfo(act).Description)
	t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
}

func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel
	switch direction {
	case -1:
		switch t.logLevel {
		case slog.LevelDebug:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelError
		}
	case 1:
		switch t.logLevel {
		case slog.LevelError:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelDebug
		}
	}
	if oldLevel != t.logLevel {
		slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel)
	}
}

func (t *Backend) render(frame *video.FrameBuffer) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, style)
		return
	}

	dividerX := termWidth - rightPanelWidth - 1
	rightPanelX := dividerX + 2
	stats := t.stats()

	t.drawBorders(termWidth, termHeight, dividerX, stats)
	t.drawFrame(frame, dividerX-1, termHeight-2)

	logsY := 1
	if t.config.ShowDebug {
		t.drawStats(rightPanelX, 1, stats)
		logsY = statsHeight + 2
	}
	t.drawLogs(rightPanelX, logsY, rightPanelWidth-1, termHeight)
}

func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= width {
			break
		}
		t.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

func (t *Backend) drawBorders(termWidth, termHeight, dividerX int, stats *debug.Stats) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := 0; y < termHeight-1; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}

	if t.config.ShowDebug {
		for x := dividerX + 1; x < termWidth; x++ {
			t.screen.SetContent(x, statsHeight+1, '─', nil, borderStyle)
		}
		t.screen.SetContent(dividerX, statsHeight+1, '├', nil, borderStyle)
	}

	title := fmt.Sprintf(" %s [%s] %.1f FPS ", t.config.Title, stats.Mode, stats.FPS)
	t.drawText(1, 0, dividerX-1, title, titleStyle)

	if t.config.ShowDebug {
		t.drawText(dividerX+2, 0, rightPanelWidth, " Timers ", titleStyle)
	}

	levelStr := "INFO"
	switch t.logLevel {
	case slog.LevelDebug:
		levelStr = "DEBUG"
	case slog.LevelWarn:
		levelStr = "WARN"
	case slog.LevelError:
		levelStr = "ERROR"
	}
	logsTitleY := 0
	if t.config.ShowDebug {
		logsTitleY = statsHeight + 1
	}
	t.drawText(dividerX+2, logsTitleY, rightPanelWidth, fmt.Sprintf(" Logs [%s] (-/+ filter) ", levelStr), titleStyle)

	helpText := " U=toggle image/fill SPACE=pause F=step R=reset timers F10=stats F12=snapshot Q=quit "
	t.drawText(0, termHeight-1, termWidth, helpText, borderStyle)
}

// drawFrame scales the frame into the left pane, two pixels per cell
func (t *Backend) drawFrame(frame *video.FrameBuffer, cols, rows int) {
	if frame == nil {
		return
	}
	width, height := render.FitSize(frame.Width(), frame.Height(), cols, rows)
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := render.Sample(frame, x, y, width, height)
			bottom := video.BlackColor
			if y+1 < height {
				bottom = render.Sample(frame, x, y+1, width, height)
			}

			ch, fg, bg := render.HalfBlockCell(top, bottom)
			style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
			t.screen.SetContent(x, y/2+1, ch, nil, style)
		}
	}
}

func toTcell(c video.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

func (t *Backend) drawStats(startX, startY int, stats *debug.Stats) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for i, line := range stats.Lines() {
		if i >= statsHeight {
			break
		}
		t.drawText(startX, startY+i, rightPanelWidth-1, line, style)
	}
}

func (t *Backend) drawLogs(startX, startY, width, termHeight int) {
	if width <= 0 || startY >= termHeight {
		return
	}

	availableHeight := termHeight - startY - 1
	if availableHeight <= 0 {
		return
	}

	allLogs := t.logBuffer.GetRecent(availableHeight * 2)
	logs := make([]render.LogEntry, 0, availableHeight)
	for _, entry := range allLogs {
		if entry.Level >= t.logLevel {
			logs = append(logs, entry)
			if len(logs) >= availableHeight {
				break
			}
		}
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, logEntry := range logs {
		style := infoStyle
		switch logEntry.Level {
		case slog.LevelDebug:
			style = debugStyle
		case slog.LevelWarn:
			style = warnStyle
		case slog.LevelError:
			style = errStyle
		}

		logText := render.FormatLogEntry(logEntry)
		if len(logText) > width && width > 3 {
			logText = logText[:width-3] + "..."
		}
		t.drawText(startX, startY+i, width, logText, style)
	}
}
