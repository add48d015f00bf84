// SPDX-License-Identifier: MIT

package domain

// Station is a stop of the network. Stations are immutable once created and
// are referenced by ID everywhere else.
type Station struct {
	ID   int64  `yaml:"id" json:"id" validate:"gte=0"`
	Name string `yaml:"name" json:"name" validate:"notblank"`
}

// Line is a named route with a per-line surcharge applied to its riders.
type Line struct {
	ID        int64  `yaml:"id" json:"id" validate:"gte=0"`
	Name      string `yaml:"name" json:"name" validate:"notblank"`
	Color     string `yaml:"color" json:"color" validate:"notblank"`
	ExtraFare int    `yaml:"extraFare" json:"extraFare" validate:"gte=0"`
}

// SectionEdge is a directed track segment UpStationID → DownStationID.
// Distance is always a positive integer.
type SectionEdge struct {
	UpStationID   int64 `yaml:"up" json:"upStationId" validate:"gt=0"`
	DownStationID int64 `yaml:"down" json:"downStationId" validate:"gt=0,nefield=UpStationID"`
	Distance      int   `yaml:"distance" json:"distance" validate:"gt=0"`
}

// Has reports whether stationID is one of the edge endpoints.
func (e SectionEdge) Has(stationID int64) bool {
	return e.UpStationID == stationID || e.DownStationID == stationID
}

// Section is a SectionEdge owned by exactly one Line.
type Section struct {
	ID     int64 `json:"id"`
	LineID int64 `json:"lineId"`
	SectionEdge
}
