package main

import (
	"encoding/json"
	"fmt"

	"floodwatch/internal/model"
	"floodwatch/internal/service"
	"floodwatch/internal/view"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
)

func (a *app) predictCmd() *cobra.Command {
	in := model.DefaultFloodInput()
	var rawOut bool

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict flood risk from sensor readings",
		Example: `  floodctl predict --precip 48 --cloudcover 95 --flood-lag-1 1
  floodctl predict --month 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := binding.Validator.ValidateStruct(&in); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			svc := service.NewPredictService(a.cfg.Predictor.URL, a.cfg.Predictor.Timeout())
			p, err := svc.Predict(cmd.Context(), in)
			if err != nil {
				a.renderer().Alert(view.NewAlert(err, view.PredictWording))
				return errReported
			}
			if rawOut {
				var pretty any
				if err := json.Unmarshal(p.Raw, &pretty); err != nil {
					return err
				}
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(pretty)
			}
			a.renderer().Assessment(view.NewAssessment(in, p))
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&in.AverageTemp, "avg-temp", in.AverageTemp, "average temperature (°C)")
	f.Float64Var(&in.Humidity, "humidity", in.Humidity, "humidity (%)")
	f.Float64Var(&in.Precip, "precip", in.Precip, "precipitation (mm)")
	f.Float64Var(&in.WindSpeed, "windspeed", in.WindSpeed, "wind speed (km/h)")
	f.Float64Var(&in.SeaLevelPressure, "sealevelpressure", in.SeaLevelPressure, "sea level pressure (hPa)")
	f.IntVar(&in.CloudCover, "cloudcover", in.CloudCover, "cloud cover (%), 0..100")
	f.Float64Var(&in.SolarRadiation, "solarradiation", in.SolarRadiation, "solar radiation (W/m²)")
	f.Float64Var(&in.SevereRisk, "severerisk", in.SevereRisk, "severe risk level, 0..1")
	f.IntVar(&in.FloodLag1, "flood-lag-1", in.FloodLag1, "flood yesterday (0/1)")
	f.IntVar(&in.FloodLag2, "flood-lag-2", in.FloodLag2, "flood 2 days ago (0/1)")
	f.IntVar(&in.FloodLag3, "flood-lag-3", in.FloodLag3, "flood 3 days ago (0/1)")
	f.IntVar(&in.FloodLag4, "flood-lag-4", in.FloodLag4, "flood 4 days ago (0/1)")
	f.IntVar(&in.FloodLag5, "flood-lag-5", in.FloodLag5, "flood 5 days ago (0/1)")
	f.Float64Var(&in.SoilMoisture, "smi", in.SoilMoisture, "soil moisture index, 0..1")
	f.IntVar(&in.Month, "month", in.Month, "month, 1..12")
	f.BoolVar(&rawOut, "json", false, "print the raw prediction JSON")
	return cmd
}
