package toolbox

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/hcminh/folio/internal/llm"
	"github.com/hcminh/folio/internal/prompts"
)

// Reading speed bounds in words per minute.
const (
	MinWPM     = 100
	MaxWPM     = 200
	DefaultWPM = 150
)

// Units are the localized words used by FormatDuration.
type Units struct {
	Minute          string
	Minutes         string
	Second          string
	Seconds         string
	LessThanASecond string
}

// EnglishUnits is used when no localized units are supplied.
var EnglishUnits = Units{
	Minute:          "minute",
	Minutes:         "minutes",
	Second:          "second",
	Seconds:         "seconds",
	LessThanASecond: "Less than a second",
}

// ReadingSeconds is the time to read words at wpm.
func ReadingSeconds(words, wpm int) float64 {
	if wpm <= 0 {
		return 0
	}
	return float64(words) / float64(wpm) * 60
}

// FormatDuration renders seconds as "M minutes S seconds". Minutes are
// floored, the remainder is rounded, zero parts are omitted.
func FormatDuration(totalSeconds float64, u Units) string {
	minutes := int(math.Floor(totalSeconds / 60))
	seconds := int(math.Round(math.Mod(totalSeconds, 60)))

	var parts []string
	if minutes > 0 {
		parts = append(parts, plural(minutes, u.Minute, u.Minutes))
	}
	if seconds > 0 {
		parts = append(parts, plural(seconds, u.Second, u.Seconds))
	}
	if len(parts) == 0 {
		return u.LessThanASecond
	}
	return strings.Join(parts, " ")
}

func plural(n int, one, many string) string {
	unit := one
	if n > 1 {
		unit = many
	}
	return strconv.Itoa(n) + " " + unit
}

type ScriptInput struct {
	Script string
}

// Estimate is the script timer result
type Estimate struct {
	WordCount int `json:"wordCount"`
}

// ScriptTimer asks the model for a word count and derives reading time
// locally from the current WPM.
type ScriptTimer struct {
	*Adapter[ScriptInput, Estimate]

	wpmMu sync.Mutex
	wpm   int
}

// NewScriptTimer creates the script timer adapter at DefaultWPM.
func NewScriptTimer(client llm.Client, gate Gate) *ScriptTimer {
	validate := func(in ScriptInput) error {
		return requireText("script", "timer.error", "Please enter a script.", in.Script)
	}
	call := func(ctx context.Context, in ScriptInput) (Estimate, error) {
		var out Estimate
		prompt, schema := prompts.WordCount(in.Script)
		raw, err := client.InvokeStructured(ctx, prompt, schema)
		if err != nil {
			return out, err
		}
		err = decode(raw, &out)
		return out, err
	}
	return &ScriptTimer{Adapter: newAdapter(gate, validate, call), wpm: DefaultWPM}
}

func (t *ScriptTimer) WPM() int {
	t.wpmMu.Lock()
	defer t.wpmMu.Unlock()
	return t.wpm
}

// SetWPM clamps wpm to [MinWPM, MaxWPM] and returns the applied value.
// The reading time follows without another model call.
func (t *ScriptTimer) SetWPM(wpm int) int {
	wpm = min(max(wpm, MinWPM), MaxWPM)
	t.wpmMu.Lock()
	defer t.wpmMu.Unlock()
	t.wpm = wpm
	return wpm
}

// ReadingTime formats the last word count at the current WPM. It reports
// false until an estimate has succeeded.
func (t *ScriptTimer) ReadingTime(u Units) (string, bool) {
	snap := t.Snapshot()
	if snap.Phase != Succeeded {
		return "", false
	}
	return FormatDuration(ReadingSeconds(snap.Result.WordCount, t.WPM()), u), true
}
