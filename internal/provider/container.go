package provider

import (
	"time"

	"github.com/ferreplus/internal/cache"
	"github.com/ferreplus/internal/config"
	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/queue"
	"github.com/ferreplus/internal/repository"
	"github.com/ferreplus/internal/service"
)

// Container wires repositories and services once at startup.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	BranchRepo      repository.BranchRepository
	VariantRepo     repository.VariantRepository
	BranchPriceRepo repository.BranchPriceRepository
	BranchStockRepo repository.BranchStockRepository
	OrderRepo       repository.OrderRepository
	StockAlertRepo  repository.StockAlertRepository
	CartStore       repository.CartStore
	ReceiptStore    repository.ReceiptStore

	// Services
	PriceService    *service.PriceService
	CartService     *service.CartService
	StockService    *service.StockService
	OrderService    *service.OrderService
	CheckoutService *service.CheckoutService
	CatalogService  *service.CatalogService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.BranchRepo = repository.NewBranchRepository(db)
	c.VariantRepo = repository.NewVariantRepository(db)
	c.BranchPriceRepo = repository.NewBranchPriceRepository(db)
	c.BranchStockRepo = repository.NewBranchStockRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.StockAlertRepo = repository.NewStockAlertRepository(db)

	// Terminal state lives in Redis when available, otherwise in the
	// database so a single-box install still keeps carts durable.
	if cache.Enabled() {
		cartTTL := time.Duration(c.Config.POS.CartTTLHours) * time.Hour
		receiptTTL := time.Duration(c.Config.POS.ReceiptTTLHours) * time.Hour
		store := repository.NewRedisTerminalStore(cartTTL, receiptTTL)
		c.CartStore = store
		c.ReceiptStore = store
	} else {
		store := repository.NewGormTerminalStore(db)
		c.CartStore = store
		c.ReceiptStore = store
	}
}

func (c *Container) initServices() {
	c.PriceService = service.NewPriceService(c.BranchPriceRepo)
	c.CartService = service.NewCartService(c.CartStore, c.PriceService, c.VariantRepo)
	c.StockService = service.NewStockService(c.BranchStockRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.BranchStockRepo, c.QueueClient, c.Config.POS.LowStockAlertEnabled)
	c.CheckoutService = service.NewCheckoutService(c.CartService, c.StockService, c.OrderService, c.ReceiptStore)
	c.CatalogService = service.NewCatalogService(c.BranchRepo, c.VariantRepo, c.BranchPriceRepo, c.BranchStockRepo)
}
