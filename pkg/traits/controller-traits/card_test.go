package controllertraits

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shadowbane/nautic/pkg/suitability"
	"github.com/stretchr/testify/assert"
)

func TestRenderHTMLCard(t *testing.T) {
	wave := 1.42
	data := SpotCardData{
		Name:       "Mar <del> Plata",
		Lat:        -38.0055,
		Lon:        -57.5426,
		Activity:   suitability.ActivitySurf,
		Label:      suitability.LabelExcellent,
		WaveHeight: &wave,
	}

	light := RenderHTMLCard(data)
	assert.Contains(t, light, "Mar &lt;del&gt; Plata")
	assert.Contains(t, light, "38.01°S, 57.54°W")
	assert.Contains(t, light, "1.4 m")
	assert.Contains(t, light, suitability.ColorGreen)
	assert.Contains(t, light, "Excellent for surf")
	assert.Contains(t, light, "🏄")

	dark := RenderHTMLCardDark(data)
	assert.Contains(t, dark, "#0f172a")
	assert.NotEqual(t, light, dark)
}

func TestRenderHTMLCard_NoData(t *testing.T) {
	card := RenderHTMLCard(SpotCardData{Name: "Cariló", Activity: suitability.ActivityKite, Label: suitability.LabelNoData})
	assert.Contains(t, card, "No data")
	assert.Contains(t, card, suitability.ColorGray)
	assert.Contains(t, card, "—")
}

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusBadRequest, "spotId requerido")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"spotId requerido"}`, rec.Body.String())
}
