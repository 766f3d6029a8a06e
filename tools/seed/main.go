// Command seed loads a product catalog from a JSON file into the
// document store. Intended for local development and fresh deployments.
//
// Usage:
//
//	seed -f products.json [-m mongodb://localhost:27017] [-db familygrill]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/familygrill/backend/internal/db"
	"github.com/familygrill/backend/internal/models"
	"github.com/familygrill/backend/internal/repository"
)

func main() {
	file := flag.String("f", "products.json", "path to the products JSON file")
	mongoURI := flag.String("m", "mongodb://localhost:27017", "document store URI")
	dbName := flag.String("db", "familygrill", "database name")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Fatalf("parse %s: %v", *file, err)
	}
	if len(products) == 0 {
		log.Fatalf("%s contains no products", *file)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := db.InitMongo(ctx, *mongoURI)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := repository.NewProductRepository(client.Database(*dbName))
	for _, p := range products {
		id, err := repo.Insert(ctx, p)
		if err != nil {
			log.Fatalf("insert %q: %v", p.Name, err)
		}
		log.Printf("inserted %q as %s", p.Name, id.Hex())
	}
	log.Printf("seeded %d products", len(products))
}
