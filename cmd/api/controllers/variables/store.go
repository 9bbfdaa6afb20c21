package variables

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/nautic/pkg/application"
	"github.com/shadowbane/nautic/pkg/models"
	"github.com/shadowbane/nautic/pkg/repository"
	traits "github.com/shadowbane/nautic/pkg/traits/controller-traits"
	"go.uber.org/zap"
)

// StoreRequest is the body of POST /api/variables
type StoreRequest struct {
	IDVariable          int64    `json:"id_variable"`
	IDProveedor         int64    `json:"id_proveedor"`
	Spot                int64    `json:"spot"`
	Nombre              string   `json:"nombre"`
	Fecha               string   `json:"fecha"`
	TipoDato            string   `json:"tipo_dato"`
	RangeMin            *float64 `json:"range_min"`
	RangeMax            *float64 `json:"range_max"`
	Valor               float64  `json:"valor"`
	UnidadBase          string   `json:"unidad_base"`
	UltimaActualizacion *string  `json:"ultima_actualizacion"`
}

// accepted timestamp layouts, most specific first
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp reads a timestamp; values without an offset are taken in loc
func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

func (req StoreRequest) toModel(loc *time.Location) (*models.VariableMeteorologica, error) {
	if req.Fecha == "" {
		return nil, fmt.Errorf("fecha requerida")
	}

	fecha, err := parseTimestamp(req.Fecha, loc)
	if err != nil {
		return nil, err
	}

	row := &models.VariableMeteorologica{
		IDVariable:  req.IDVariable,
		IDProveedor: req.IDProveedor,
		Spot:        req.Spot,
		Nombre:      req.Nombre,
		Fecha:       fecha,
		TipoDato:    req.TipoDato,
		RangeMin:    req.RangeMin,
		RangeMax:    req.RangeMax,
		Valor:       req.Valor,
		UnidadBase:  req.UnidadBase,
	}

	if req.UltimaActualizacion != nil && *req.UltimaActualizacion != "" {
		updated, err := parseTimestamp(*req.UltimaActualizacion, loc)
		if err != nil {
			return nil, err
		}
		updated = updated.UTC()
		row.UltimaActualizacion = &updated
	}

	return row, nil
}

// Store inserts one weather variable row
func Store(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		var req StoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			traits.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		row, err := req.toModel(app.Location)
		if err != nil {
			traits.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := repository.InsertVariable(r.Context(), app.DB, row); err != nil {
			zap.S().Errorf("Error al insertar variable: %v", err)
			traits.WriteErrorResponse(w, http.StatusInternalServerError, "Error al insertar variable")
			return
		}

		traits.WriteJSON(w, http.StatusCreated, row)
	}
}
