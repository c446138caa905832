package flats

import (
	"fmt"
	"html"
	"slices"
	"strconv"
	"strings"

	"flat-monitor/core/reconcile"
	"flat-monitor/feature/flats/models"

	"github.com/dustin/go-humanize"
)

// NoChangesMessage is the whole report of a pass that found nothing to report.
const NoChangesMessage = "No changes since the last check."

// Summary holds the statistics of one snapshot.
type Summary struct {
	Studios  int     `json:"studios"`
	OneRoom  int     `json:"one_room"`
	Cheapest []int64 `json:"cheapest"`
}

// CategoryTop lists the cheapest free flats of one category.
type CategoryTop struct {
	Category models.Category `json:"category"`
	Flats    []models.Flat   `json:"flats"`
}

// Summarize counts monitored flats and collects the limit lowest prices among them.
// Duplicate prices are kept.
func Summarize(snapshot []models.Flat, limit int) Summary {
	s := Summary{Cheapest: []int64{}}
	prices := make([]int64, 0, len(snapshot))
	for _, f := range snapshot {
		switch f.Category() {
		case models.CategoryStudio:
			s.Studios++
		case models.CategoryOneRoom:
			s.OneRoom++
		default:
			continue
		}
		prices = append(prices, f.Price)
	}
	slices.Sort(prices)
	if len(prices) > limit {
		prices = prices[:limit]
	}
	s.Cheapest = append(s.Cheapest, prices...)
	return s
}

// TopFree returns, per monitored category, up to limit free flats by ascending price.
func TopFree(snapshot []models.Flat, limit int) []CategoryTop {
	tops := make([]CategoryTop, 0, len(models.MonitoredCategories))
	for _, c := range models.MonitoredCategories {
		var free []models.Flat
		for _, f := range snapshot {
			if f.IsFree() && f.Category() == c {
				free = append(free, f)
			}
		}
		slices.SortFunc(free, byPrice)
		if len(free) > limit {
			free = free[:limit]
		}
		tops = append(tops, CategoryTop{Category: c, Flats: free})
	}
	return tops
}

func byPrice(a, b models.Flat) int {
	if a.Price != b.Price {
		if a.Price < b.Price {
			return -1
		}
		return 1
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// ReportData is everything a change report is rendered from.
type ReportData struct {
	Complex string
	Plan    *reconcile.Plan[models.Flat]
	Summary Summary
	Top     []CategoryTop

	// TopLimit is the per-category size the Top block was built with.
	TopLimit int
}

// RenderReport renders the change report of one pass as Telegram HTML.
// Change lines come added first, then removed, then edited, each group by ascending id.
func RenderReport(d ReportData) string {
	if d.Plan == nil || !d.Plan.HasChanges() {
		return NoChangesMessage
	}

	lines := []string{
		fmt.Sprintf("⚡️ <b>%s update</b>", html.EscapeString(d.Complex)),
		"Changes since the last check:",
	}
	for _, f := range d.Plan.Added {
		lines = append(lines, "➕ "+describe(f))
	}
	for _, f := range d.Plan.Removed {
		lines = append(lines, "➖ "+describe(f))
	}
	for _, e := range d.Plan.Edited {
		for _, ch := range e.Changes {
			lines = append(lines, fmt.Sprintf("✏️ #%d %s: %s → %s",
				e.Key, ch.Field, renderValue(ch.Field, ch.Old), renderValue(ch.Field, ch.New)))
		}
	}

	lines = append(lines, "")
	lines = append(lines, summaryLines(d.Summary)...)

	if len(d.Top) > 0 {
		lines = append(lines, "", fmt.Sprintf("<b>Top %d free per category</b>", d.TopLimit))
		for _, top := range d.Top {
			lines = append(lines, top.Category.Label()+":")
			if len(top.Flats) == 0 {
				lines = append(lines, "  none")
				continue
			}
			for i, f := range top.Flats {
				lines = append(lines, fmt.Sprintf("  %d. %s · %s · floor %s",
					i+1, flatLink(f), formatMln(f.Price), formatFloor(f.Floor)))
			}
		}
	}

	return strings.Join(lines, "\n")
}

func summaryLines(s Summary) []string {
	lines := []string{
		fmt.Sprintf("%s: %d", models.CategoryStudio.Label(), s.Studios),
		fmt.Sprintf("%s: %d", models.CategoryOneRoom.Label(), s.OneRoom),
		"Lowest prices:",
	}
	if len(s.Cheapest) == 0 {
		return append(lines, "  none")
	}
	for i, p := range s.Cheapest {
		lines = append(lines, fmt.Sprintf("  #%d: %s", i+1, formatMln(p)))
	}
	return lines
}

// describe renders the identity line of an added or removed flat.
func describe(f models.Flat) string {
	return fmt.Sprintf("#%d · %s · %s · floor %s · %s",
		f.ID, categoryName(f.Rooms), formatMln(f.Price), formatFloor(f.Floor), html.EscapeString(f.Status))
}

func categoryName(rooms string) string {
	switch models.Classify(rooms) {
	case models.CategoryStudio:
		return "studio"
	case models.CategoryOneRoom:
		return "1-room"
	default:
		return "rooms " + html.EscapeString(rooms)
	}
}

// renderValue renders one side of a field change. Prices are scaled to millions.
// Absent values and empty strings render differently.
func renderValue(field string, v any) string {
	if v == nil {
		return "n/a"
	}
	if field == "price" {
		if p, ok := v.(int64); ok {
			return formatMln(p)
		}
	}
	switch val := v.(type) {
	case string:
		if val == "" {
			return `""`
		}
		return html.EscapeString(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatMln(price int64) string {
	return fmt.Sprintf("%.2f mln", float64(price)/1_000_000)
}

func formatRub(price int64) string {
	return humanize.Comma(price) + " RUB"
}

func formatFloor(floor *int) string {
	if floor == nil {
		return "n/a"
	}
	return strconv.Itoa(*floor)
}

// flatLink renders "#id", linked to the listing page when the flat has one.
func flatLink(f models.Flat) string {
	label := fmt.Sprintf("#%d", f.ID)
	if f.URL == "" {
		return label
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(f.URL), label)
}

// CategoryStats holds the availability of one monitored category.
type CategoryStats struct {
	Category models.Category `json:"category"`
	Free     int64           `json:"free"`
	Reserved int64           `json:"reserved"`
	Cheapest []models.Flat   `json:"cheapest"`
}

// RenderStats renders the statistics-only report. Links to listing pages are
// included only when withLinks is set.
func RenderStats(complexName string, stats []CategoryStats, withLinks bool) string {
	lines := []string{fmt.Sprintf("<b>%s</b>", html.EscapeString(complexName))}
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("%s: <b>%d</b> free (reserved %d)", s.Category.Label(), s.Free, s.Reserved))
	}
	lines = append(lines, "")
	for _, s := range stats {
		lines = append(lines, s.Category.Label()+", cheapest free:")
		if len(s.Cheapest) == 0 {
			lines = append(lines, "  none")
			continue
		}
		for i, f := range s.Cheapest {
			label := fmt.Sprintf("#%d", f.ID)
			if withLinks {
				label = flatLink(f)
			}
			lines = append(lines, fmt.Sprintf("  %d. %s · %s · floor %s", i+1, label, formatRub(f.Price), formatFloor(f.Floor)))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderCheapest renders a cheapest-flats listing of one category.
func RenderCheapest(c models.Category, flats []models.Flat) string {
	if len(flats) == 0 {
		return "No data yet. Try again later."
	}
	lines := []string{fmt.Sprintf("Cheapest %s:", strings.ToLower(c.Label()))}
	for i, f := range flats {
		lines = append(lines, fmt.Sprintf("#%d: %s · floor %s · %s", i+1, formatMln(f.Price), formatFloor(f.Floor), flatLink(f)))
	}
	return strings.Join(lines, "\n")
}
