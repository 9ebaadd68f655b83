// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package airnow talks to the AirNow air quality API and declares the wire
// types of its documented response format.
package airnow

// Category is the provider's severity bucket for a single pollutant reading.
type Category struct {
	Number int    `json:"Number"`
	Name   string `json:"Name"`
}

// ObservationEntry is one element of the current observation response. The
// provider returns one entry per pollutant for the same date, hour and
// reporting area.
type ObservationEntry struct {
	DateObserved  string   `json:"DateObserved"`
	HourObserved  int      `json:"HourObserved"`
	LocalTimeZone string   `json:"LocalTimeZone"`
	ReportingArea string   `json:"ReportingArea"`
	StateCode     string   `json:"StateCode"`
	Latitude      float64  `json:"Latitude"`
	Longitude     float64  `json:"Longitude"`
	ParameterName string   `json:"ParameterName"`
	AQI           int      `json:"AQI"`
	Category      Category `json:"Category"`
}

// ForecastEntry is one element of the forecast response, one entry per
// pollutant per forecasted day.
type ForecastEntry struct {
	DateIssue     string   `json:"DateIssue"`
	DateForecast  string   `json:"DateForecast"`
	ReportingArea string   `json:"ReportingArea"`
	StateCode     string   `json:"StateCode"`
	Latitude      float64  `json:"Latitude"`
	Longitude     float64  `json:"Longitude"`
	ParameterName string   `json:"ParameterName"`
	AQI           int      `json:"AQI"`
	Category      Category `json:"Category"`
	ActionDay     bool     `json:"ActionDay"`
	Discussion    string   `json:"Discussion"`
}
