// Command console drives the selection/upload subsystem from the terminal:
// browse a content type through a picker session, list the media library, or
// push a batch of local files through the upload pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/contentloom/console/internal/client"
	"github.com/contentloom/console/internal/models"
	"github.com/contentloom/console/internal/service"
	"github.com/contentloom/console/pkg/config"
	"github.com/contentloom/console/pkg/logger"
)

func main() {
	contentType := flag.String("type", "", "content type to browse")
	query := flag.String("query", "", "search query applied to the picker")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	api := client.New(cfg.Console.BaseURL, cfg.Console.RequestTimeout, logr)
	metrics := service.NewMetricsService()
	catalog := service.NewCatalogService(api, metrics, cfg.Console.PageSize, logr)

	ctx := context.Background()

	if files := flag.Args(); len(files) > 0 {
		runUploadBatch(ctx, cfg, api, catalog, metrics, logr, files)
		return
	}

	if *contentType != "" {
		browse(ctx, catalog, logr, *contentType, *query)
		return
	}

	listMedia(ctx, catalog, logr)
}

func browse(ctx context.Context, catalog *service.CatalogService, logr *zap.Logger, apiID, query string) {
	picker := service.NewPickerService(catalog, logr)
	session := picker.Open(ctx, apiID, service.SelectionMultiple)
	session.Search(query)

	records := session.Records()
	if len(records) == 0 {
		fmt.Printf("no records for %q\n", apiID)
		return
	}
	fmt.Printf("%s (display field: %s)\n", apiID, session.DisplayField())
	for _, rec := range records {
		fmt.Printf("  %-12s %s\n", rec.ID(), session.Label(rec))
	}
}

func listMedia(ctx context.Context, catalog *service.CatalogService, logr *zap.Logger) {
	media, err := catalog.Media(ctx)
	if err != nil {
		logr.Sugar().Fatalw("media listing failed", "error", err)
	}
	for _, m := range media {
		fmt.Printf("  %-36s %-30s %10d  %s\n", m.ID, m.Name, m.SizeBytes, m.Type)
	}
}

// logListener narrates batch progress to stdout.
type logListener struct{}

func (logListener) ItemUpdated(item models.UploadItem) {
	if item.Status == models.UploadFailed {
		fmt.Printf("  %s: failed (%s)\n", item.FileName, item.Error)
		return
	}
	fmt.Printf("  %s: %d%% (%s)\n", item.FileName, item.Progress, item.Status)
}

func (logListener) BatchFinished(summary models.BatchSummary) {
	fmt.Printf("uploaded %d/%d\n", summary.SuccessCount, summary.TotalCount)
}

func (logListener) CloseDialog() {}

func runUploadBatch(ctx context.Context, cfg *config.Config, api *client.Client, catalog *service.CatalogService, metrics *service.MetricsService, logr *zap.Logger, paths []string) {
	uploads := service.NewUploadService(api, catalog, metrics, cfg.Console.ProgressTick, cfg.Console.AutoCloseDelay, logr)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logr.Sugar().Fatalw("read file failed", "path", path, "error", err)
		}
		uploads.Add(filepath.Base(path), data)
	}

	summary, err := uploads.Run(ctx, logListener{})
	if err != nil {
		logr.Sugar().Fatalw("upload batch failed to start", "error", err)
	}
	if summary == nil {
		fmt.Println("nothing to upload")
		return
	}
	if !summary.AllSucceeded() {
		os.Exit(1)
	}
}
