package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/palette"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintEvent outputs a single engine event; JSON events are one per line
func (o *Output) PrintEvent(event model.Event) {
	if o.format == "json" {
		data, _ := json.Marshal(NewEvent(event))
		fmt.Fprintln(o.out, string(data))
		return
	}
	switch p := event.Payload.(type) {
	case model.PieceSpawnedPayload:
		fmt.Fprintf(o.out, "[%s] %s at (%d,%d), next %s\n", event.Type, p.Tag, p.Position.X, p.Position.Y, p.Next)
	case model.PieceLockedPayload:
		fmt.Fprintf(o.out, "[%s] %s at (%d,%d)\n", event.Type, p.Tag, p.Position.X, p.Position.Y)
	case model.RowsClearedPayload:
		fmt.Fprintf(o.out, "[%s] %d line(s) for %d points, score %d\n", event.Type, p.Lines, p.Points, p.Score)
	case model.GameOverPayload:
		fmt.Fprintf(o.out, "[%s] final score %d\n", event.Type, p.Score)
	default:
		fmt.Fprintf(o.out, "[%s]\n", event.Type)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Snapshot:
		o.printSnapshot(v)
	case SimulateResult:
		o.printSimulateResult(v)
	case RunResult:
		o.printRunResult(v)
	case []PieceInfo:
		o.printPieces(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Snapshot response type. Grids are rows of tag letters with "." for empty.
type Snapshot struct {
	Board     []string `json:"board"`
	Active    []string `json:"active"`
	ActiveTag string   `json:"active_tag"`
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Next      []string `json:"next"`
	NextTag   string   `json:"next_tag"`
	Score     int      `json:"score"`
	IsOver    bool     `json:"is_over"`
}

// SimulateResult response type
type SimulateResult struct {
	Commands  int      `json:"commands"`
	Applied   int      `json:"applied"`
	Frames    int      `json:"frames"`
	ElapsedMS int64    `json:"elapsed_ms"`
	Snapshot  Snapshot `json:"snapshot"`
}

// RunResult response type
type RunResult struct {
	Frames    int      `json:"frames"`
	Commands  int      `json:"commands"`
	ElapsedMS int64    `json:"elapsed_ms"`
	Snapshot  Snapshot `json:"snapshot"`
}

// PieceInfo response type
type PieceInfo struct {
	Tag   string   `json:"tag"`
	Color string   `json:"color"`
	Shape []string `json:"shape"`
}

// Event response type
type Event struct {
	Type   string `json:"type"`
	Tag    string `json:"tag,omitempty"`
	Next   string `json:"next,omitempty"`
	X      *int   `json:"x,omitempty"`
	Y      *int   `json:"y,omitempty"`
	Lines  int    `json:"lines,omitempty"`
	Points int    `json:"points,omitempty"`
	Score  *int   `json:"score,omitempty"`
}

// NewEvent converts an engine event
func NewEvent(e model.Event) Event {
	out := Event{Type: string(e.Type)}
	switch p := e.Payload.(type) {
	case model.PieceSpawnedPayload:
		out.Tag, out.Next = string(p.Tag), string(p.Next)
		out.X, out.Y = &p.Position.X, &p.Position.Y
	case model.PieceLockedPayload:
		out.Tag = string(p.Tag)
		out.X, out.Y = &p.Position.X, &p.Position.Y
	case model.RowsClearedPayload:
		out.Lines, out.Points, out.Score = p.Lines, p.Points, &p.Score
	case model.GameOverPayload:
		out.Score = &p.Score
	}
	return out
}

// NewSnapshot converts an engine snapshot. The board shows the active piece
// composited over the settled blocks.
func NewSnapshot(s model.Snapshot) Snapshot {
	return Snapshot{
		Board:     gridRows(s.Composite()),
		Active:    gridRows(s.Active),
		ActiveTag: string(s.ActiveTag),
		X:         s.Position.X,
		Y:         s.Position.Y,
		Next:      gridRows(s.Next),
		NextTag:   string(s.NextTag),
		Score:     s.Score,
		IsOver:    s.IsOver,
	}
}

func gridRows[T ~[][]model.Cell](grid T) []string {
	rows := make([]string, len(grid))
	for y, row := range grid {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
		rows[y] = sb.String()
	}
	return rows
}

func (o *Output) printSnapshot(s Snapshot) {
	o.printBoard(s.Board)
	fmt.Fprintf(o.out, "Score: %d\n", s.Score)
	fmt.Fprintf(o.out, "Active: %s at (%d,%d)\n", s.ActiveTag, s.X, s.Y)
	fmt.Fprintf(o.out, "Next: %s\n", s.NextTag)
	for _, row := range s.Next {
		fmt.Fprintf(o.out, "  %s\n", row)
	}
	if s.IsOver {
		fmt.Fprintln(o.out, "GAME OVER")
	}
}

func (o *Output) printSimulateResult(r SimulateResult) {
	o.printSnapshot(r.Snapshot)
	fmt.Fprintf(o.out, "Commands: %d (%d applied)\n", r.Commands, r.Applied)
	fmt.Fprintf(o.out, "Frames: %d over %dms\n", r.Frames, r.ElapsedMS)
}

func (o *Output) printRunResult(r RunResult) {
	o.printSnapshot(r.Snapshot)
	fmt.Fprintf(o.out, "Frames: %d over %dms\n", r.Frames, r.ElapsedMS)
	fmt.Fprintf(o.out, "Commands: %d\n", r.Commands)
}

func (o *Output) printPieces(pieces []PieceInfo) {
	for i, p := range pieces {
		if i > 0 {
			fmt.Fprintln(o.out)
		}
		fmt.Fprintf(o.out, "%s %s\n", p.Tag, p.Color)
		for _, row := range p.Shape {
			fmt.Fprintf(o.out, "  %s\n", row)
		}
	}
}

func (o *Output) printBoard(rows []string) {
	if len(rows) == 0 {
		return
	}
	width := len(rows[0])
	border := "+" + strings.Repeat("-", width) + "+"

	fmt.Fprintln(o.out, border)
	for _, row := range rows {
		fmt.Fprintf(o.out, "|%s|\n", row)
	}
	fmt.Fprintln(o.out, border)
}

// pieceInfos lists every piece kind in draw order
func pieceInfos(shapes func(model.PieceTag) (model.Shape, error)) ([]PieceInfo, error) {
	infos := make([]PieceInfo, 0, len(model.AllTags))
	for _, tag := range model.AllTags {
		shape, err := shapes(tag)
		if err != nil {
			return nil, err
		}
		color, _ := palette.Color(tag.Cell())
		infos = append(infos, PieceInfo{
			Tag:   string(tag),
			Color: color,
			Shape: gridRows(shape),
		})
	}
	return infos, nil
}
