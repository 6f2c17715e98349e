package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/store-admin-api/config"
	"github.com/oksasatya/store-admin-api/pkg/helpers"
)

// seed creates a demo user identity, one store and a small catalog so the
// dashboard has something to show on a fresh database. It prints a bearer
// token for the demo user.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	userID := "demo-user"

	var storeID string
	err = db.QueryRow(
		`INSERT INTO stores (user_id, name) VALUES ($1, $2) RETURNING id`,
		userID, "Demo Store",
	).Scan(&storeID)
	if err != nil {
		log.Fatalf("seed store: %v", err)
	}

	var billboardID string
	err = db.QueryRow(
		`INSERT INTO billboards (store_id, label, image_url) VALUES ($1, $2, $3) RETURNING id`,
		storeID, "Summer Collection", "https://storage.googleapis.com/demo/billboards/summer.jpg",
	).Scan(&billboardID)
	if err != nil {
		log.Fatalf("seed billboard: %v", err)
	}

	var categoryID string
	err = db.QueryRow(
		`INSERT INTO categories (store_id, name, billboard_id) VALUES ($1, $2, $3) RETURNING id`,
		storeID, "Shirts", billboardID,
	).Scan(&categoryID)
	if err != nil {
		log.Fatalf("seed category: %v", err)
	}

	var sizeID string
	err = db.QueryRow(
		`INSERT INTO sizes (store_id, name, value) VALUES ($1, $2, $3) RETURNING id`,
		storeID, "Medium", "M",
	).Scan(&sizeID)
	if err != nil {
		log.Fatalf("seed size: %v", err)
	}

	var colorID string
	err = db.QueryRow(
		`INSERT INTO colors (store_id, name, value) VALUES ($1, $2, $3) RETURNING id`,
		storeID, "Black", "#000000",
	).Scan(&colorID)
	if err != nil {
		log.Fatalf("seed color: %v", err)
	}

	var productID string
	err = db.QueryRow(
		`INSERT INTO products (store_id, name, price, category_id, color_id, size_id, is_featured, is_archived)
		 VALUES ($1, $2, $3, $4, $5, $6, true, false) RETURNING id`,
		storeID, "Plain Tee", 19.90, categoryID, colorID, sizeID,
	).Scan(&productID)
	if err != nil {
		log.Fatalf("seed product: %v", err)
	}
	_, err = db.Exec(
		`INSERT INTO product_images (product_id, url, position) VALUES ($1, $2, 0)`,
		productID, "https://storage.googleapis.com/demo/products/"+uuid.NewString()+".jpg",
	)
	if err != nil {
		log.Fatalf("seed product image: %v", err)
	}

	tokens := helpers.NewTokenManager(cfg.IdentitySecret, cfg.IdentityTTL)
	token, exp, err := tokens.Issue(userID)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Printf("store:    %s\n", storeID)
	fmt.Printf("product:  %s\n", productID)
	fmt.Printf("user:     %s\n", userID)
	fmt.Printf("token:    %s\n", token)
	fmt.Printf("expires:  %s\n", exp)
}
