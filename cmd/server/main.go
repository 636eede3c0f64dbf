package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"

	"github.com/malimedia/campaign-entries/internal/api"
	"github.com/malimedia/campaign-entries/internal/archive"
	"github.com/malimedia/campaign-entries/internal/campaign"
	"github.com/malimedia/campaign-entries/internal/config"
	"github.com/malimedia/campaign-entries/internal/contacts"
	"github.com/malimedia/campaign-entries/internal/disposable"
	"github.com/malimedia/campaign-entries/internal/pipeline"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

func main() {
	log.Println("Campaign Entries intake server starting")

	// Load configuration
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Pre-flight check: verify the target port is available
	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}
	log.Printf("Pre-flight check passed: port %d is available", port)

	// AWS clients for the contact index, campaign rules and archive bucket
	awsOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if profile := cfg.AWS.GetProfile(); profile != "" {
		awsOpts = append(awsOpts, awsconfig.WithSharedConfigProfile(profile))
		log.Printf("Using AWS profile %q", profile)
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsOpts...)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)
	s3Client := s3.NewFromConfig(awsCfg)
	log.Printf("AWS clients initialized (region: %s)", cfg.AWS.Region)

	// Campaign rules, optionally fronted by a Redis read-through cache
	var provider campaign.Provider = campaign.NewDynamoProvider(ddbClient, cfg.Storage.CampaignsTable)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Redis connection failed (%s): %v, campaign rules will be read from DynamoDB directly", cfg.Redis.Addr, err)
			redisClient.Close()
			redisClient = nil
		} else {
			provider = campaign.NewCachedProvider(provider, redisClient, cfg.Redis.CampaignTTL())
			log.Printf("Redis campaign cache enabled: %s (TTL %s)", cfg.Redis.Addr, cfg.Redis.CampaignTTL())
		}
		pingCancel()
	} else {
		log.Println("Redis not configured, campaign rules read from DynamoDB directly")
	}

	// Intake pipeline
	classifier := disposable.NewClassifier(cfg.Disposable.ExtraDomains...)
	log.Printf("Disposable-domain classifier loaded (%d domains)", classifier.Count())

	store := contacts.NewDynamoStore(ddbClient, cfg.Storage.ContactsTable)
	archiver := archive.NewS3Writer(s3Client, cfg.Storage.ArchiveBucket)
	pipe := pipeline.New(store, archiver, classifier)
	log.Printf("Pipeline wired: contacts=%s campaigns=%s archive=s3://%s",
		cfg.Storage.ContactsTable, cfg.Storage.CampaignsTable, cfg.Storage.ArchiveBucket)

	// HTTP server
	handlers := api.NewHandlers(provider, pipe)
	healthChecker := api.NewHealthChecker(ddbClient, cfg.Storage.ContactsTable,
		s3Client, cfg.Storage.ArchiveBucket, redisClient)
	server := api.NewServer(handlers, healthChecker)

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Println("All services initialized, server is ready")

	<-done
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}

	log.Println("Server stopped")
}
