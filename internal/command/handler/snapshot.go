package command

import (
	"context"
	"encoding/json"

	"talentboard/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type SnapshotHandler struct {
	logger           *zap.Logger
	loaderService    *service.LoaderService
	analyticsService *service.AnalyticsService
}

func NewSnapshotHandler(
	logger *zap.Logger,
	loaderService *service.LoaderService,
	analyticsService *service.AnalyticsService,
) *SnapshotHandler {
	return &SnapshotHandler{
		logger:           logger,
		loaderService:    loaderService,
		analyticsService: analyticsService,
	}
}

// Run 抓一次名單、跑完整分析後輸出 JSON
func (handler *SnapshotHandler) Run(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if err := handler.loaderService.Load(ctx); err != nil {
		handler.logger.Error("snapshot load failed", zap.Error(err))
		cmd.PrintErrln("load failed:", err)
		return
	}

	analytics := handler.analyticsService.Compute(ctx)
	out, err := json.MarshalIndent(analytics, "", "  ")
	if err != nil {
		cmd.PrintErrln("marshal failed:", err)
		return
	}
	cmd.Println(string(out))
}
