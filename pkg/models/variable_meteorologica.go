package models

import (
	"time"

	"github.com/shadowbane/weather-alert/pkg/helpers"

	"gorm.io/gorm"
)

// Canonical variable names written by the forecast sync
const (
	VariableTemperature   = "temperature_2m"
	VariableWindSpeed     = "wind_speed_10m"
	VariablePrecipitation = "precipitation"
	VariableWaveHeight    = "wave_height"
)

// VariableMeteorologica is a generic weather observation row.
// Nothing beyond the column types is enforced.
type VariableMeteorologica struct {
	ID                  string     `json:"id" gorm:"type:char(26);primaryKey;autoIncrement:false"`
	IDVariable          int64      `json:"id_variable" gorm:"column:id_variable"`
	IDProveedor         int64      `json:"id_proveedor" gorm:"column:id_proveedor;index"`
	Spot                int64      `json:"spot" gorm:"column:spot;index"`
	Nombre              string     `json:"nombre" gorm:"column:nombre;type:varchar(100)"`
	Fecha               time.Time  `json:"fecha" gorm:"column:fecha;index"`
	TipoDato            string     `json:"tipo_dato" gorm:"column:tipo_dato;type:varchar(50)"`
	RangeMin            *float64   `json:"range_min" gorm:"column:range_min"`
	RangeMax            *float64   `json:"range_max" gorm:"column:range_max"`
	Valor               float64    `json:"valor" gorm:"column:valor"`
	UnidadBase          string     `json:"unidad_base" gorm:"column:unidad_base;type:varchar(20)"`
	UltimaActualizacion *time.Time `json:"ultima_actualizacion" gorm:"column:ultima_actualizacion"`
}

func (v *VariableMeteorologica) TableName() string {
	return "variable_meteorologica"
}

// BeforeCreate will set a ULID rather than numeric ID.
func (v *VariableMeteorologica) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = helpers.NewULID()
	}
	return nil
}

// DayAverage holds per-variable means for one spot and day. Nil means no rows matched.
type DayAverage struct {
	Temperature   *float64 `json:"temperature_2m" gorm:"column:temperature_2m"`
	WindSpeed     *float64 `json:"wind_speed_10m" gorm:"column:wind_speed_10m"`
	Precipitation *float64 `json:"precipitation" gorm:"column:precipitation"`
	WaveHeight    *float64 `json:"wave_height" gorm:"column:wave_height"`
}
