package main

import (
	"time"

	"github.com/ferreplus/internal/config"
	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/models"

	"github.com/shopspring/decimal"
)

type variantSeed struct {
	SKU         string
	DisplayName string
	Attributes  models.Attributes
}

type productSeed struct {
	Name     string
	Brand    string
	Category string
	Variants []variantSeed
}

type priceSeed struct {
	SKU          string
	BranchCode   string
	SalePrice    string
	MinimumStock int
}

type stockSeed struct {
	SKU        string
	BranchCode string
	OnHand     int
	Minimum    int
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	branches := []models.Branch{
		{Code: "CEN", Name: "Sucursal Centro", Address: "Av. Juárez 120, Centro", Phone: "555-010-2200", IsActive: true},
		{Code: "NTE", Name: "Sucursal Norte", Address: "Blvd. Industrias 840, Norte", Phone: "555-010-2201", IsActive: true},
	}
	for _, branch := range branches {
		var existing models.Branch
		if err := models.DB.Where("code = ?", branch.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&branch).Error; err != nil {
				stdLog.Printf("Failed to create branch %s: %v", branch.Code, err)
			} else {
				stdLog.Printf("Created branch: %s", branch.Code)
			}
		} else {
			stdLog.Printf("Branch already exists: %s", branch.Code)
		}
	}

	branchIDs := map[string]uint{}
	var branchList []models.Branch
	if err := models.DB.Find(&branchList).Error; err != nil {
		stdLog.Printf("Failed to load branches: %v", err)
	}
	for _, branch := range branchList {
		branchIDs[branch.Code] = branch.ID
	}

	products := []productSeed{
		{
			Name:     "Pintura Vinílica Interior",
			Brand:    "Comex",
			Category: "pinturas",
			Variants: []variantSeed{
				{SKU: "PIN-VIN-BCO-1L", DisplayName: "Pintura Vinílica Interior Blanco 1L", Attributes: models.Attributes{"color": "blanco", "presentacion": "1L", "acabado": "mate"}},
				{SKU: "PIN-VIN-BCO-4L", DisplayName: "Pintura Vinílica Interior Blanco 4L", Attributes: models.Attributes{"color": "blanco", "presentacion": "4L", "acabado": "mate"}},
				{SKU: "PIN-VIN-AZU-1L", DisplayName: "Pintura Vinílica Interior Azul Cielo 1L", Attributes: models.Attributes{"color": "azul cielo", "presentacion": "1L", "acabado": "mate"}},
			},
		},
		{
			Name:     "Esmalte Anticorrosivo",
			Brand:    "Sayer",
			Category: "pinturas",
			Variants: []variantSeed{
				{SKU: "ESM-ANT-NGO-1L", DisplayName: "Esmalte Anticorrosivo Negro 1L", Attributes: models.Attributes{"color": "negro", "presentacion": "1L", "acabado": "brillante"}},
			},
		},
		{
			Name:     "Brocha de Cerda Natural",
			Brand:    "Truper",
			Category: "herramientas",
			Variants: []variantSeed{
				{SKU: "BRO-CER-2IN", DisplayName: "Brocha de Cerda Natural 2\"", Attributes: models.Attributes{"ancho": "2in"}},
				{SKU: "BRO-CER-4IN", DisplayName: "Brocha de Cerda Natural 4\"", Attributes: models.Attributes{"ancho": "4in"}},
			},
		},
		{
			Name:     "Rodillo de Felpa",
			Brand:    "Truper",
			Category: "herramientas",
			Variants: []variantSeed{
				{SKU: "ROD-FEL-9IN", DisplayName: "Rodillo de Felpa 9\"", Attributes: models.Attributes{"ancho": "9in", "pelo": "3/8in"}},
			},
		},
		{
			Name:     "Tornillo para Madera",
			Brand:    "Fiero",
			Category: "ferreteria",
			Variants: []variantSeed{
				{SKU: "TOR-MAD-1IN-C100", DisplayName: "Tornillo para Madera 1\" Caja 100", Attributes: models.Attributes{"largo": "1in", "caja": "100"}},
				{SKU: "TOR-MAD-2IN-C100", DisplayName: "Tornillo para Madera 2\" Caja 100", Attributes: models.Attributes{"largo": "2in", "caja": "100"}},
			},
		},
	}

	variantIDs := map[string]uint{}
	for _, seed := range products {
		var product models.Product
		if err := models.DB.Where("name = ? AND brand = ?", seed.Name, seed.Brand).First(&product).Error; err != nil {
			product = models.Product{
				Name:     seed.Name,
				Brand:    seed.Brand,
				Category: seed.Category,
				IsActive: true,
			}
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", seed.Name, err)
				continue
			}
			stdLog.Printf("Created product: %s", seed.Name)
		} else {
			stdLog.Printf("Product already exists: %s", seed.Name)
		}

		for _, vs := range seed.Variants {
			var variant models.ProductVariant
			if err := models.DB.Where("sku = ?", vs.SKU).First(&variant).Error; err != nil {
				variant = models.ProductVariant{
					ProductID:   product.ID,
					SKU:         vs.SKU,
					DisplayName: vs.DisplayName,
					Attributes:  vs.Attributes,
					IsActive:    true,
				}
				if err := models.DB.Create(&variant).Error; err != nil {
					stdLog.Printf("Failed to create variant %s: %v", vs.SKU, err)
					continue
				}
				stdLog.Printf("Created variant: %s", vs.SKU)
			} else {
				stdLog.Printf("Variant already exists: %s", vs.SKU)
			}
			variantIDs[vs.SKU] = variant.ID
		}
	}

	prices := []priceSeed{
		{SKU: "PIN-VIN-BCO-1L", BranchCode: "CEN", SalePrice: "185.00", MinimumStock: 6},
		{SKU: "PIN-VIN-BCO-4L", BranchCode: "CEN", SalePrice: "620.00", MinimumStock: 4},
		{SKU: "PIN-VIN-AZU-1L", BranchCode: "CEN", SalePrice: "198.50", MinimumStock: 4},
		{SKU: "ESM-ANT-NGO-1L", BranchCode: "CEN", SalePrice: "245.00", MinimumStock: 3},
		{SKU: "BRO-CER-2IN", BranchCode: "CEN", SalePrice: "38.90", MinimumStock: 10},
		{SKU: "BRO-CER-4IN", BranchCode: "CEN", SalePrice: "62.50", MinimumStock: 8},
		{SKU: "ROD-FEL-9IN", BranchCode: "CEN", SalePrice: "74.00", MinimumStock: 6},
		{SKU: "TOR-MAD-1IN-C100", BranchCode: "CEN", SalePrice: "55.00", MinimumStock: 12},
		{SKU: "TOR-MAD-2IN-C100", BranchCode: "CEN", SalePrice: "68.00", MinimumStock: 12},
		{SKU: "PIN-VIN-BCO-1L", BranchCode: "NTE", SalePrice: "189.00", MinimumStock: 6},
		{SKU: "PIN-VIN-BCO-4L", BranchCode: "NTE", SalePrice: "635.00", MinimumStock: 4},
		{SKU: "BRO-CER-2IN", BranchCode: "NTE", SalePrice: "39.90", MinimumStock: 10},
		{SKU: "ROD-FEL-9IN", BranchCode: "NTE", SalePrice: "76.00", MinimumStock: 6},
		{SKU: "TOR-MAD-1IN-C100", BranchCode: "NTE", SalePrice: "57.00", MinimumStock: 12},
	}
	for _, ps := range prices {
		variantID := variantIDs[ps.SKU]
		branchID := branchIDs[ps.BranchCode]
		if variantID == 0 || branchID == 0 {
			stdLog.Printf("Skipping price for %s@%s: missing variant or branch", ps.SKU, ps.BranchCode)
			continue
		}
		var existing models.BranchPrice
		if err := models.DB.Where("variant_id = ? AND branch_id = ? AND is_current = ?", variantID, branchID, true).
			First(&existing).Error; err != nil {
			amount, parseErr := decimal.NewFromString(ps.SalePrice)
			if parseErr != nil {
				stdLog.Printf("Invalid price for %s: %v", ps.SKU, parseErr)
				continue
			}
			price := models.BranchPrice{
				VariantID:     variantID,
				BranchID:      branchID,
				SalePrice:     models.NewMoneyFromDecimal(amount),
				MinimumStock:  ps.MinimumStock,
				EffectiveFrom: time.Now(),
				IsCurrent:     true,
			}
			if err := models.DB.Create(&price).Error; err != nil {
				stdLog.Printf("Failed to create price for %s@%s: %v", ps.SKU, ps.BranchCode, err)
			} else {
				stdLog.Printf("Created price: %s@%s = %s", ps.SKU, ps.BranchCode, ps.SalePrice)
			}
		} else {
			stdLog.Printf("Price already exists: %s@%s", ps.SKU, ps.BranchCode)
		}
	}

	stocks := []stockSeed{
		{SKU: "PIN-VIN-BCO-1L", BranchCode: "CEN", OnHand: 24, Minimum: 6},
		{SKU: "PIN-VIN-BCO-4L", BranchCode: "CEN", OnHand: 10, Minimum: 4},
		{SKU: "PIN-VIN-AZU-1L", BranchCode: "CEN", OnHand: 8, Minimum: 4},
		{SKU: "ESM-ANT-NGO-1L", BranchCode: "CEN", OnHand: 5, Minimum: 3},
		{SKU: "BRO-CER-2IN", BranchCode: "CEN", OnHand: 40, Minimum: 10},
		{SKU: "BRO-CER-4IN", BranchCode: "CEN", OnHand: 18, Minimum: 8},
		{SKU: "ROD-FEL-9IN", BranchCode: "CEN", OnHand: 15, Minimum: 6},
		{SKU: "TOR-MAD-1IN-C100", BranchCode: "CEN", OnHand: 30, Minimum: 12},
		{SKU: "TOR-MAD-2IN-C100", BranchCode: "CEN", OnHand: 26, Minimum: 12},
		{SKU: "PIN-VIN-BCO-1L", BranchCode: "NTE", OnHand: 16, Minimum: 6},
		{SKU: "PIN-VIN-BCO-4L", BranchCode: "NTE", OnHand: 6, Minimum: 4},
		{SKU: "BRO-CER-2IN", BranchCode: "NTE", OnHand: 22, Minimum: 10},
		{SKU: "ROD-FEL-9IN", BranchCode: "NTE", OnHand: 9, Minimum: 6},
		{SKU: "TOR-MAD-1IN-C100", BranchCode: "NTE", OnHand: 14, Minimum: 12},
	}
	for _, ss := range stocks {
		variantID := variantIDs[ss.SKU]
		branchID := branchIDs[ss.BranchCode]
		if variantID == 0 || branchID == 0 {
			stdLog.Printf("Skipping stock for %s@%s: missing variant or branch", ss.SKU, ss.BranchCode)
			continue
		}
		var existing models.BranchStock
		if err := models.DB.Where("variant_id = ? AND branch_id = ?", variantID, branchID).First(&existing).Error; err != nil {
			stock := models.BranchStock{
				VariantID: variantID,
				BranchID:  branchID,
				OnHand:    ss.OnHand,
				Minimum:   ss.Minimum,
			}
			if err := models.DB.Create(&stock).Error; err != nil {
				stdLog.Printf("Failed to create stock for %s@%s: %v", ss.SKU, ss.BranchCode, err)
			} else {
				stdLog.Printf("Created stock: %s@%s existencia=%d", ss.SKU, ss.BranchCode, ss.OnHand)
			}
		} else {
			stdLog.Printf("Stock already exists: %s@%s", ss.SKU, ss.BranchCode)
		}
	}

	stdLog.Println("Seed completed")
}
