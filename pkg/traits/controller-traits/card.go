package controllertraits

import (
	"fmt"
	"html"
	"time"

	"github.com/shadowbane/nautic/pkg/suitability"
	basetraits "github.com/shadowbane/weather-alert/pkg/traits/controller-traits"
)

// SpotCardData holds the data needed to render a spot card
type SpotCardData struct {
	Name          string
	Lat           float64
	Lon           float64
	Activity      suitability.Activity
	Label         suitability.Label
	Temperature   *float64
	WindSpeed     *float64
	Precipitation *float64
	WaveHeight    *float64
	UpdatedAt     time.Time
	Timezone      string
}

type cardTheme struct {
	border     string
	background string
	shadow     string
	title      string
	muted      string
	value      string
	divider    string
	badgeBg    map[suitability.Label]string
}

var lightTheme = cardTheme{
	border:     "#e5e7eb",
	background: "linear-gradient(135deg,#f8fafc 0%,#e2e8f0 100%)",
	shadow:     "rgba(0,0,0,0.1)",
	title:      "#0D3B66",
	muted:      "#64748b",
	value:      "#334155",
	divider:    "#cbd5e1",
	badgeBg: map[suitability.Label]string{
		suitability.LabelExcellent: "#f0fdf4",
		suitability.LabelGood:      "#fffbeb",
		suitability.LabelPoor:      "#fef2f2",
		suitability.LabelNoData:    "#f8fafc",
	},
}

var darkTheme = cardTheme{
	border:     "#374151",
	background: "linear-gradient(135deg,#1e293b 0%,#0f172a 100%)",
	shadow:     "rgba(0,0,0,0.3)",
	title:      "#f1f5f9",
	muted:      "#94a3b8",
	value:      "#e2e8f0",
	divider:    "#475569",
	badgeBg: map[suitability.Label]string{
		suitability.LabelExcellent: "#052e16",
		suitability.LabelGood:      "#451a03",
		suitability.LabelPoor:      "#450a0a",
		suitability.LabelNoData:    "#1e293b",
	},
}

// GetActivityIcon returns an emoji for the activity
func GetActivityIcon(a suitability.Activity) string {
	switch a {
	case suitability.ActivitySurf:
		return "🏄"
	case suitability.ActivityKite:
		return "🪁"
	default:
		return "📍"
	}
}

// labelText is the badge caption of a label
func labelText(l suitability.Label) string {
	switch l {
	case suitability.LabelExcellent:
		return "Excellent"
	case suitability.LabelGood:
		return "Good"
	case suitability.LabelPoor:
		return "Poor"
	default:
		return "No data"
	}
}

// formatCardTime formats time for card display in Y-m-d H:i format
func formatCardTime(t time.Time, timezone string) string {
	if t.IsZero() {
		return "—"
	}
	formatted := basetraits.FormatTimeWithTimezone(t, timezone)
	return formatted.Format("2006-01-02 15:04")
}

func formatValue(v *float64, unit string) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f%s", *v, unit)
}

// hemisphere renders coordinates as "38.01°S, 57.54°W"
func hemisphere(lat, lon float64) string {
	ns, ew := "N", "E"
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lon < 0 {
		ew, lon = "W", -lon
	}
	return fmt.Sprintf("%.2f°%s, %.2f°%s", lat, ns, lon, ew)
}

func renderSuitabilityBadge(data SpotCardData, theme cardTheme) string {
	color := suitability.Color(data.Label)
	return fmt.Sprintf(`
  <div style="margin-top:12px;padding:10px;background:%s;border:1px solid %s;border-radius:8px;display:flex;align-items:center;gap:8px;">
    <span style="display:inline-block;width:12px;height:12px;border-radius:50%%;background:%s;"></span>
    <span style="font-size:12px;font-weight:600;color:%s;text-transform:uppercase;">%s for %s</span>
  </div>`, theme.badgeBg[data.Label], color, color, color, labelText(data.Label), html.EscapeString(string(data.Activity)))
}

func renderStat(theme cardTheme, label, value string) string {
	return fmt.Sprintf(`
    <div>
      <div style="font-size:10px;color:%s;text-transform:uppercase;">%s</div>
      <div style="font-size:13px;font-weight:500;color:%s;">%s</div>
    </div>`, theme.muted, label, theme.value, value)
}

func renderCard(data SpotCardData, theme cardTheme) string {
	stats := renderStat(theme, "Temp", formatValue(data.Temperature, "°C")) +
		renderStat(theme, "Wind", formatValue(data.WindSpeed, " m/s")) +
		renderStat(theme, "Rain", formatValue(data.Precipitation, " mm")) +
		renderStat(theme, "Waves", formatValue(data.WaveHeight, " m"))

	return fmt.Sprintf(`<div style="width:400px;border:1px solid %s;border-radius:12px;padding:16px;font-family:system-ui,-apple-system,sans-serif;background:%s;box-shadow:0 4px 6px -1px %s;">
  <div style="display:flex;align-items:flex-start;gap:12px;">
    <span style="font-size:48px;flex-shrink:0;">%s</span>
    <div style="min-width:0;flex:1;">
      <div style="font-size:18px;font-weight:600;color:%s;">%s</div>
      <div style="font-size:14px;color:%s;">%s</div>
    </div>
  </div>%s
  <div style="border-top:1px solid %s;margin-top:12px;padding-top:8px;display:flex;justify-content:space-between;">%s
  </div>
  <div style="font-size:10px;color:%s;margin-top:8px;">Updated %s</div>
</div>`,
		theme.border, theme.background, theme.shadow,
		GetActivityIcon(data.Activity),
		theme.title, html.EscapeString(data.Name),
		theme.muted, hemisphere(data.Lat, data.Lon),
		renderSuitabilityBadge(data, theme),
		theme.divider, stats,
		theme.muted, formatCardTime(data.UpdatedAt, data.Timezone))
}

// RenderHTMLCard renders a spot as a light HTML card
func RenderHTMLCard(data SpotCardData) string {
	return renderCard(data, lightTheme)
}

// RenderHTMLCardDark renders a spot as a dark HTML card
func RenderHTMLCardDark(data SpotCardData) string {
	return renderCard(data, darkTheme)
}
