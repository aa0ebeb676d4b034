package commands

import (
	"errors"
	"fmt"

	"github.com/partscout/backend/config"
	"github.com/partscout/backend/internal/domain"
	"github.com/partscout/backend/internal/infrastructure/microcenter"
	"github.com/partscout/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var errLookupFailed = errors.New("lookup did not complete")

func init() {
	lookupCmd.Flags().String("store", "", "store id (default from config)")
	lookupCmd.Flags().String("accept", "", "accept a redirect to this SKU after a mismatch")
	lookupCmd.Flags().String("reject", "", "reject a redirect to this SKU after a mismatch")
	lookupCmd.MarkFlagsMutuallyExclusive("accept", "reject")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <input>",
	Short: "Resolves a SKU, barcode, product link or search text against the catalog.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}

		client, err := microcenter.NewClient(microcenter.ClientOptions{
			BaseURL:           cfg.Retailer.BaseURL,
			UserAgent:         cfg.Retailer.UserAgent,
			Timeout:           cfg.Retailer.Timeout,
			RequestsPerSecond: cfg.Retailer.RequestsPerSecond,
			Burst:             cfg.Retailer.Burst,
		})
		if err != nil {
			return err
		}
		client.SetDebug(cfg.Lookup.Debug)

		service := usecase.NewLookupService(
			nil,
			usecase.NewResolver(client, usecase.ResolverConfig{
				ImageBaseURL:       cfg.Retailer.ImageBaseURL,
				EnableDebugLogging: cfg.Lookup.Debug,
			}),
			nil,
			usecase.LookupServiceConfig{DefaultStoreID: cfg.Retailer.DefaultStoreID},
		)

		request, err := lookupRequestFromFlags(cmd, args[0])
		if err != nil {
			return err
		}

		outcome, err := service.Lookup(cmd.Context(), request)
		if err != nil {
			return err
		}

		renderOutcome(cmd.OutOrStdout(), outcome)
		if outcome.Kind == domain.OutcomeBlocked || outcome.Kind == domain.OutcomeTransientError {
			return fmt.Errorf("%w: %s", errLookupFailed, outcome.Kind)
		}
		return nil
	},
}

func lookupRequestFromFlags(cmd *cobra.Command, input string) (*domain.LookupRequest, error) {
	store, _ := cmd.Flags().GetString("store")
	accept, _ := cmd.Flags().GetString("accept")
	reject, _ := cmd.Flags().GetString("reject")

	request := &domain.LookupRequest{Input: input, StoreID: store}
	switch {
	case accept != "" && reject != "":
		return nil, fmt.Errorf("%w: --accept and --reject are exclusive", domain.ErrInvalidRequest)
	case accept != "":
		request.Decision = &domain.PriorDecision{Action: domain.DecisionAcceptRedirect, Found: accept}
	case reject != "":
		request.Decision = &domain.PriorDecision{Action: domain.DecisionReject, Found: reject}
	}
	return request, nil
}
