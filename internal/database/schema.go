package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecart/internal/models"
)

// pgDuplicateTable is PostgreSQL SQLSTATE 42P07 ("relation already exists").
const pgDuplicateTable = "42P07"

// EnsureSchema creates the three e-cart tables and seeds the sample
// catalog. It is idempotent: a table that already exists is fine, and
// seeding only happens while the products table is empty.
func EnsureSchema(db *gorm.DB) error {
	tables := []interface{}{
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
	}
	for _, table := range tables {
		if err := db.Migrator().CreateTable(table); err != nil {
			if isDuplicateTable(err) {
				continue
			}
			return fmt.Errorf("create table for %T: %w", table, err)
		}
	}
	return seedProducts(db)
}

// isDuplicateTable reports whether err means "object already exists".
// Only that specific condition is swallowed by EnsureSchema; every
// other schema error propagates.
func isDuplicateTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgDuplicateTable
	}
	// SQLite (used by the test suite) has no error codes here.
	return strings.Contains(err.Error(), "already exists")
}

// seedProducts inserts the sample catalog while the products table is
// empty. The unique index on product name plus ON CONFLICT DO NOTHING
// makes the seed safe against two initializers racing each other: both
// may attempt the insert, but each row lands at most once.
func seedProducts(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		if count > 0 {
			return nil
		}
		seed := seedCatalog()
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		return nil
	})
}

// seedCatalog returns the fixed sample products inserted at first
// initialization.
func seedCatalog() []models.Product {
	return []models.Product{
		{Name: "IBM Power10 Server S1022", Description: "Dual-socket POWER10 server — ppc64le architecture, ideal for AI/ML workloads", Price: 49999.99, Stock: 10, Category: "Servers"},
		{Name: "IBM Fusion HCI Node", Description: "Hyper-converged infrastructure node for OpenShift — NVMe + 25GbE", Price: 89999.99, Stock: 5, Category: "HCI"},
		{Name: "Red Hat OpenShift Subscription", Description: "Enterprise Kubernetes platform subscription (1 year, unlimited nodes)", Price: 1299.99, Stock: 100, Category: "Software"},
		{Name: "IBM Db2 Enterprise License", Description: "Enterprise database license for IBM Power — includes HA and partitioning", Price: 4999.99, Stock: 50, Category: "Software"},
		{Name: "NVMe SSD 3.84TB U.2", Description: "High-speed NVMe storage for HCI nodes — 7GB/s read", Price: 1299.99, Stock: 30, Category: "Storage"},
		{Name: "25GbE Dual-Port NIC", Description: "High-performance 25GbE network adapter for OCP nodes", Price: 399.99, Stock: 75, Category: "Networking"},
		{Name: "IBM Storage Scale License", Description: "Parallel file system license for IBM Fusion HCI", Price: 2499.99, Stock: 20, Category: "Software"},
		{Name: "DDR5 128GB RDIMM", Description: "Server memory module for IBM Power10 — DDR5 4800MHz", Price: 899.99, Stock: 40, Category: "Memory"},
	}
}
