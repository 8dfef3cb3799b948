package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mcoot/leaderboard/internal/model"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output renders rankings in the configured format
type Output struct {
	format string
	w      io.Writer
}

// New creates an Output writing to w. An empty format means text.
func New(format string, w io.Writer) (*Output, error) {
	switch format {
	case "":
		format = FormatText
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownOutputFormat, format)
	}
	return &Output{format: format, w: w}, nil
}

// PrintRanking outputs every entry, highest first, followed by the top player
func (o *Output) PrintRanking(r model.Ranking) error {
	if o.format == FormatJSON {
		if r.Entries == nil {
			r.Entries = []model.Entry{}
		}
		return o.printJSON(r)
	}

	for _, e := range r.Entries {
		if _, err := fmt.Fprintf(o.w, "%s: %s\n", e.Player, FormatScore(e.Score)); err != nil {
			return err
		}
	}
	return o.printTopLine(r.TopPlayer)
}

// PrintTopPlayer outputs only the top player
func (o *Output) PrintTopPlayer(top *string) error {
	if o.format == FormatJSON {
		return o.printJSON(map[string]*string{"top_player": top})
	}
	return o.printTopLine(top)
}

func (o *Output) printTopLine(top *string) error {
	name := "none"
	if top != nil {
		name = *top
	}
	_, err := fmt.Fprintf(o.w, "Top player: %s\n", name)
	return err
}

func (o *Output) printJSON(data any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// FormatScore renders a score in its shortest decimal form, so whole numbers
// print without a fractional part
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
