package main

import (
	"strings"

	"floodwatch/internal/service"
	"floodwatch/internal/view"

	"github.com/spf13/cobra"
)

func (a *app) askCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ask [question...]",
		Short:   "Ask the farm assistant a question",
		Example: `  floodctl ask "When should I plant maize in a wet season?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewAskService(a.cfg.Assistant.URL, a.cfg.Assistant.Timeout())
			answer, err := svc.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				a.renderer().Alert(view.NewAlert(err, view.AskWording))
				return errReported
			}
			return a.renderer().Answer(answer)
		},
	}
}
