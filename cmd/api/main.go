package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/catalog"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/config"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/logging"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/metrics"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/repository/localfile"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/service"
	httptransport "github.com/ikigaiwif606-acc/pickleball-dashboard/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogFile != "" {
		fileWriter, err := logging.NewFileWriter(cfg.LogFile)
		if err != nil {
			log.Printf("Warning: log file disabled: %v", err)
		} else {
			defer fileWriter.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, fileWriter))
		}
	}

	courts, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}
	log.Printf("catalog loaded: %d courts", len(courts))

	store, err := localfile.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("opening data dir: %v", err)
	}

	favorites := service.NewFavoriteService(localfile.NewFavoriteRepo(store))
	reviews := service.NewReviewService(localfile.NewReviewRepo(store))
	discovery := service.NewDiscoveryService()
	collector := metrics.NewCollector()

	e := httptransport.NewRouter(cfg.AllowOrigins, collector)
	httptransport.RegisterCourts(e, courts, discovery, favorites, reviews, collector)
	httptransport.RegisterFavorites(e, courts, favorites, collector)
	httptransport.RegisterReviews(e, courts, reviews, collector)
	httptransport.RegisterSitemap(e, cfg.PublicBaseURL, courts)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func loadCatalog(cfg config.Config) ([]domain.Court, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Load()
}
