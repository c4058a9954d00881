package model

import "encoding/json"

// FloodInput is the sensor form of the flood dashboard. The JSON tags are the
// exact keys the prediction backend expects.
type FloodInput struct {
	AverageTemp      float64 `form:"avg_temp" json:"Average_temp"`
	Humidity         float64 `form:"humidity" json:"humidity"`
	Precip           float64 `form:"precip" json:"precip"`
	WindSpeed        float64 `form:"windspeed" json:"windspeed"`
	SeaLevelPressure float64 `form:"sealevelpressure" json:"sealevelpressure"`
	CloudCover       int     `form:"cloudcover" json:"cloudcover" binding:"min=0,max=100"`
	SolarRadiation   float64 `form:"solarradiation" json:"solarradiation"`
	SevereRisk       float64 `form:"severerisk" json:"severerisk" binding:"min=0,max=1"`
	FloodLag1        int     `form:"flood_lag_1" json:"flood_lag_1" binding:"oneof=0 1"`
	FloodLag2        int     `form:"flood_lag_2" json:"flood_lag_2" binding:"oneof=0 1"`
	FloodLag3        int     `form:"flood_lag_3" json:"flood_lag_3" binding:"oneof=0 1"`
	FloodLag4        int     `form:"flood_lag_4" json:"flood_lag_4" binding:"oneof=0 1"`
	FloodLag5        int     `form:"flood_lag_5" json:"flood_lag_5" binding:"oneof=0 1"`
	SoilMoisture     float64 `form:"smi" json:"SMI_linear_norm" binding:"min=0,max=1"`
	Month            int     `form:"month" json:"month" binding:"min=1,max=12"`
}

// DefaultFloodInput returns the values the form starts with.
func DefaultFloodInput() FloodInput {
	return FloodInput{
		AverageTemp:      28.5,
		Humidity:         76.2,
		Precip:           12.3,
		WindSpeed:        8.1,
		SeaLevelPressure: 1012.5,
		CloudCover:       68,
		SolarRadiation:   140.5,
		SevereRisk:       0.2,
		SoilMoisture:     0.53,
		Month:            7,
	}
}

// Lags returns flood_lag_1..5 in order.
func (in FloodInput) Lags() []int {
	return []int{in.FloodLag1, in.FloodLag2, in.FloodLag3, in.FloodLag4, in.FloodLag5}
}

// Prediction holds the fields read from a /predict response. Raw keeps the
// body exactly as received.
type Prediction struct {
	FloodProbability float64         `json:"flood_probability_percent"`
	RiskScore        float64         `json:"flood_risk_score_percent"`
	FinalFlood       bool            `json:"final_flood"`
	ModelVotes       []string        `json:"model_votes"`
	Raw              json.RawMessage `json:"-"`
}

type AskRequest struct {
	Query string `json:"query" form:"query"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}
